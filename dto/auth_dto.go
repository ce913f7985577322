package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type RegisterInput struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

var fieldMessages = map[string]string{
	"Name.min":                 "Name must be at least 2 characters long.",
	"Name.required":            "Name is required.",
	"Email.email":              "Please provide a valid email address.",
	"Email.required":           "Email is required.",
	"Password.min":             "Password must be at least 8 characters long.",
	"Password.required":        "Password is required.",
	"PasswordConfirm.eqfield":  "Passwords do not match.",
	"PasswordConfirm.required": "Password confirmation is required.",
	"Rating.min":               "Rating must be between 1 and 5.",
	"Rating.max":               "Rating must be between 1 and 5.",
	"Rating.required":          "Rating is required.",
}

// ValidationMessages turns binding failures into a field→message map for
// 400 responses. Non-validator errors (malformed JSON and the like) come
// back under a single "body" key.
func ValidationMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "Invalid request body."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			out[fe.Field()] = msg
			continue
		}
		out[fe.Field()] = fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
	return out
}
