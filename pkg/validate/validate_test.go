package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=50"`
	Email    string  `json:"email" validate:"nullable,email"`
	Website  string  `json:"website" validate:"nullable,url"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int     `json:"stock" validate:"nullable,gte=0,lte=1000"`
	Role     string  `json:"role" validate:"required,in=admin,user"`
	Username string  `json:"username" validate:"nullable,alpha_dash"`
}

func validInput() sampleInput {
	return sampleInput{
		Name:  "Widget",
		Price: 9.99,
		Role:  "user",
	}
}

func TestStructValid(t *testing.T) {
	errs := Struct(validInput())
	assert.Empty(t, errs)
}

func TestStructFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sampleInput)
		field  string
	}{
		{"missing name", func(in *sampleInput) { in.Name = "" }, "name"},
		{"name too short", func(in *sampleInput) { in.Name = "x" }, "name"},
		{"bad email", func(in *sampleInput) { in.Email = "not-an-email" }, "email"},
		{"bad url", func(in *sampleInput) { in.Website = "ftp://example.com" }, "website"},
		{"zero price", func(in *sampleInput) { in.Price = 0 }, "price"},
		{"negative stock", func(in *sampleInput) { in.Stock = -1 }, "stock"},
		{"stock over limit", func(in *sampleInput) { in.Stock = 1001 }, "stock"},
		{"unknown role", func(in *sampleInput) { in.Role = "root" }, "role"},
		{"bad username chars", func(in *sampleInput) { in.Username = "has space" }, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := Struct(&in)
			assert.True(t, HasErrors(errs))
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := validInput()
	in.Email, in.Website, in.Username = "", "", ""
	assert.Empty(t, Struct(in))
}

func TestInRuleWithTrailingRules(t *testing.T) {
	type statusInput struct {
		Status string `json:"status" validate:"required,in=pending,processing,completed,max=20"`
	}

	assert.Empty(t, Struct(statusInput{Status: "processing"}))

	errs := Struct(statusInput{Status: "bogus"})
	assert.Contains(t, errs, "status")
}
