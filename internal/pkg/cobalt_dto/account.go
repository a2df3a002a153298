package cobalt_dto

type UpdatePhoneNumberRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type Account struct {
	AccountID   string `json:"accountId"`
	RoleID      string `json:"roleId,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type AccountResponse struct {
	Account Account `json:"account"`
}

// ErrorResponse is the error body returned by the Cobalt API.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
