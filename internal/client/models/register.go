package models

// RegistrationData is the input of the register flow. Validation tags mirror
// the signup form: email format, a minimum-length password policy, a display
// name, and a role limited to the self-serve roles (admins are provisioned
// elsewhere).
type RegistrationData struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"name" validate:"required"`
	Role        Role   `json:"role" validate:"required,oneof=student parent"`
}
