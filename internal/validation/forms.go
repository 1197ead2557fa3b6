package validation

// Character limits enforced by the text inputs and by validation.
const (
	CaptionMaxLength = 500
	BioMaxLength     = 150
	PasswordMinLen   = 6
)

// LoginForm is submitted by the login screen.
type LoginForm struct {
	Email    string `form:"email" validate:"notblank,email_loose"`
	Password string `form:"password" validate:"notblank"`
}

func (LoginForm) Messages() map[string]string {
	return map[string]string{
		"email.notblank":    "Please enter your email",
		"email.email_loose": "Please enter a valid email address",
		"password.notblank": "Please enter your password",
	}
}

// SignupForm is submitted by the signup screen.
type SignupForm struct {
	Username string `form:"username" validate:"notblank"`
	Email    string `form:"email" validate:"notblank,email_loose"`
	Password string `form:"password" validate:"notblank,min=6"`
}

func (SignupForm) Messages() map[string]string {
	return map[string]string{
		"username.notblank": "Please enter a username",
		"email.notblank":    "Please enter your email",
		"email.email_loose": "Please enter a valid email address",
		"password.notblank": "Please enter a password",
		"password.min":      "Password must be at least 6 characters",
	}
}

// ForgotPasswordForm is submitted by the reset password screen.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"notblank,email_loose"`
}

func (ForgotPasswordForm) Messages() map[string]string {
	return map[string]string{
		"email.notblank":    "Please enter your email",
		"email.email_loose": "Please enter a valid email address",
	}
}

// CreatePostForm is submitted by the create post screen. Image holds the
// selected image reference and is empty until one is picked.
type CreatePostForm struct {
	Image    string `form:"image" validate:"notblank"`
	Caption  string `form:"caption" validate:"notblank,max=500"`
	Location string `form:"location" validate:"notblank"`
}

func (CreatePostForm) Messages() map[string]string {
	return map[string]string{
		"image.notblank":    "Please select an image",
		"caption.notblank":  "Please enter a caption",
		"caption.max":       "Caption must be at most 500 characters",
		"location.notblank": "Please enter a location",
	}
}

// EditProfileForm is submitted by the edit profile screen.
type EditProfileForm struct {
	Name     string `form:"name" validate:"notblank"`
	Username string `form:"username" validate:"notblank"`
	Bio      string `form:"bio" validate:"max=150"`
}

func (EditProfileForm) Messages() map[string]string {
	return map[string]string{
		"name.notblank":     "Please enter your name",
		"username.notblank": "Please enter a username",
		"bio.max":           "Bio must be at most 150 characters",
	}
}

// CommentForm is submitted from the comment modal and `posts comment`.
type CommentForm struct {
	Comment string `form:"comment" validate:"notblank"`
}

func (CommentForm) Messages() map[string]string {
	return map[string]string{
		"comment.notblank": "Please enter a comment",
	}
}
