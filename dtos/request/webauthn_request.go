package request

type WebAuthnRegisterRequest struct {
	CredentialId string   `json:"credentialId" validate:"required"`
	PublicKey    string   `json:"publicKey" validate:"required,base64"`
	Transports   []string `json:"transports"`
	Counter      int64    `json:"counter" validate:"gte=0"`
}

type WebAuthnAuthenticateChallengeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type WebAuthnAuthenticateRequest struct {
	CredentialId      string `json:"credentialId" validate:"required"`
	AuthenticatorData string `json:"authenticatorData" validate:"required,base64"`
	ClientDataJSON    string `json:"clientDataJSON" validate:"required,base64"`
	Signature         string `json:"signature" validate:"required,base64"`
}
