package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

func requireMessage(t *testing.T, err error, field, message string) {
	t.Helper()

	var validationErr *yatraerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, field, validationErr.Field)
	assert.Equal(t, message, validationErr.Message)
}

func TestCreatePostFormRejectsInOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		form    CreatePostForm
		field   string
		message string
	}{
		{name: "no image", form: CreatePostForm{Caption: "hi", Location: "Goa"}, field: "image", message: "Please select an image"},
		{name: "no image wins over empty caption", form: CreatePostForm{}, field: "image", message: "Please select an image"},
		{name: "empty caption", form: CreatePostForm{Image: "img", Caption: "", Location: "Goa"}, field: "caption", message: "Please enter a caption"},
		{name: "blank caption", form: CreatePostForm{Image: "img", Caption: "   ", Location: "Goa"}, field: "caption", message: "Please enter a caption"},
		{name: "empty location", form: CreatePostForm{Image: "img", Caption: "hi", Location: " \t"}, field: "location", message: "Please enter a location"},
		{name: "caption too long", form: CreatePostForm{Image: "img", Caption: strings.Repeat("a", 501), Location: "Goa"}, field: "caption", message: "Caption must be at most 500 characters"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			requireMessage(t, Validate(tc.form), tc.field, tc.message)
		})
	}

	require.NoError(t, Validate(CreatePostForm{Image: "img", Caption: strings.Repeat("a", 500), Location: "Goa"}))
}

func TestForgotPasswordForm(t *testing.T) {
	t.Parallel()

	requireMessage(t, Validate(ForgotPasswordForm{Email: "  "}), "email", "Please enter your email")
	requireMessage(t, Validate(ForgotPasswordForm{Email: "not-an-email"}), "email", "Please enter a valid email address")
	requireMessage(t, Validate(ForgotPasswordForm{Email: "a b@c.d"}), "email", "Please enter a valid email address")
	require.NoError(t, Validate(ForgotPasswordForm{Email: "traveller@example.com"}))
}

func TestLoginAndSignupForms(t *testing.T) {
	t.Parallel()

	requireMessage(t, Validate(LoginForm{Email: "a@b.co"}), "password", "Please enter your password")
	require.NoError(t, Validate(LoginForm{Email: "a@b.co", Password: "secret"}))

	requireMessage(t, Validate(SignupForm{Email: "a@b.co", Password: "secret1"}), "username", "Please enter a username")
	requireMessage(t, Validate(SignupForm{Username: "rahul", Email: "a@b.co", Password: "12345"}), "password", "Password must be at least 6 characters")
	require.NoError(t, Validate(SignupForm{Username: "rahul", Email: "a@b.co", Password: "123456"}))
}

func TestEditProfileForm(t *testing.T) {
	t.Parallel()

	requireMessage(t, Validate(EditProfileForm{Name: "", Username: "u"}), "name", "Please enter your name")
	requireMessage(t, Validate(EditProfileForm{Name: "Rahul", Username: " "}), "username", "Please enter a username")
	requireMessage(t, Validate(EditProfileForm{Name: "Rahul", Username: "u", Bio: strings.Repeat("é", 151)}), "bio", "Bio must be at most 150 characters")
	require.NoError(t, Validate(EditProfileForm{Name: "Rahul", Username: "u", Bio: strings.Repeat("é", 150)}))
	require.NoError(t, Validate(EditProfileForm{Name: "Rahul", Username: "u"}))
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \n\t"))
	assert.False(t, IsBlank(" x "))
	assert.True(t, IsEmail("x@y.z"))
	assert.False(t, IsEmail("x@y"))
	assert.Same(t, Instance(), Instance())
}
