package storage

import (
	"fmt"
	"sync"
)

var (
	mu          sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// RegisterDisk makes a disk available under name.
func RegisterDisk(name string, d Disk) {
	mu.Lock()
	defer mu.Unlock()
	disks[name] = d
	if defaultDisk == "" {
		defaultDisk = name
	}
}

// SetDefault selects which registered disk Default returns.
func SetDefault(name string) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := disks[name]; !ok {
		return fmt.Errorf("storage: unknown disk %q", name)
	}
	defaultDisk = name
	return nil
}

// DiskByName returns a registered disk.
func DiskByName(name string) (Disk, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: unknown disk %q", name)
	}
	return d, nil
}

// Default returns the default disk, or nil if none registered.
func Default() Disk {
	mu.RLock()
	defer mu.RUnlock()
	return disks[defaultDisk]
}
