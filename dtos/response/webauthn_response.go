package response

type WebAuthnRegisterChallengeResponse struct {
	Challenge string `json:"challenge"`
	UserId    string `json:"userId"`
	RpId      string `json:"rpId"`
	RpName    string `json:"rpName"`
	Timeout   int    `json:"timeout"`
}

type WebAuthnRegisterResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

type AllowedCredential struct {
	Id         string   `json:"id"`
	Type       string   `json:"type"`
	Transports []string `json:"transports"`
}

type WebAuthnAuthenticateChallengeResponse struct {
	Challenge        string              `json:"challenge"`
	AllowCredentials []AllowedCredential `json:"allowCredentials"`
	Timeout          int                 `json:"timeout"`
	RpId             string              `json:"rpId"`
}
