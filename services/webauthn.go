package services

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"month_balance_ms/config"
	"month_balance_ms/domain"
	"month_balance_ms/dtos/request"
	"month_balance_ms/dtos/response"
	"month_balance_ms/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ceremonyTimeoutMs is the client-side timeout advertised with every
// challenge; the server-side bound is the challenge cache TTL.
const ceremonyTimeoutMs = 60000

type IWebAuthnService interface {
	BeginRegistration(userID uint) (*response.WebAuthnRegisterChallengeResponse, error)
	FinishRegistration(userID uint, req *request.WebAuthnRegisterRequest) (*response.WebAuthnRegisterResponse, error)
	BeginAuthentication(email string) (*response.WebAuthnAuthenticateChallengeResponse, error)
	FinishAuthentication(req *request.WebAuthnAuthenticateRequest) (*response.LoginResponse, error)
}

type WebAuthnService struct {
	db             *gorm.DB
	userRepo       repository.IUserRepository
	credentialRepo repository.ICredentialRepository
	challenges     IChallengeCache
	jwt            IJWTService
	logger         *zap.Logger
}

func NewWebAuthnService(
	db *gorm.DB,
	userRepo repository.IUserRepository,
	credentialRepo repository.ICredentialRepository,
	challenges IChallengeCache,
	jwt IJWTService,
	logger *zap.Logger,
) IWebAuthnService {
	return &WebAuthnService{
		db:             db,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		challenges:     challenges,
		jwt:            jwt,
		logger:         logger,
	}
}

// BeginRegistration issues a registration challenge for an existing user.
// The user handle is the decimal user id, base64-encoded, so the same user
// always presents the same handle to the authenticator.
func (ws *WebAuthnService) BeginRegistration(userID uint) (*response.WebAuthnRegisterChallengeResponse, error) {
	user, err := ws.userRepo.GetByID(ws.db, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	challenge, err := ws.challenges.Issue(CeremonyRegister, user.Id)
	if err != nil {
		return nil, err
	}

	return &response.WebAuthnRegisterChallengeResponse{
		Challenge: challenge,
		UserId:    base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(int(user.Id)))),
		RpId:      config.Conf.Application.WebAuthn.RpID,
		RpName:    config.Conf.Application.WebAuthn.RpDisplayName,
		Timeout:   ceremonyTimeoutMs,
	}, nil
}

// FinishRegistration binds a new authenticator public key to the user. The
// pending challenge is the gate: without one the client must restart the
// ceremony. Credential ids are unique across all users.
func (ws *WebAuthnService) FinishRegistration(userID uint, req *request.WebAuthnRegisterRequest) (*response.WebAuthnRegisterResponse, error) {
	if _, err := ws.challenges.Consume(CeremonyRegister, userID); err != nil {
		return nil, err
	}

	exists, err := ws.credentialRepo.CredentialExists(ws.db, req.CredentialId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCredentialExists
	}

	now := time.Now().UTC()
	credential := &domain.WebAuthnCredential{
		UserID:       userID,
		CredentialID: req.CredentialId,
		PublicKey:    req.PublicKey,
		Counter:      req.Counter,
		Transports:   strings.Join(req.Transports, ","),
		CreatedAt:    &now,
	}
	if _, err := ws.credentialRepo.Create(ws.db, credential); err != nil {
		return nil, err
	}

	return &response.WebAuthnRegisterResponse{
		Verified: true,
		Message:  "Biometric authentication enabled",
	}, nil
}

// BeginAuthentication issues an authentication challenge keyed to the user
// owning the credentials that may answer it.
func (ws *WebAuthnService) BeginAuthentication(email string) (*response.WebAuthnAuthenticateChallengeResponse, error) {
	user, err := ws.userRepo.GetUserByEmail(ws.db, email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	credentials, err := ws.credentialRepo.GetByUserID(ws.db, user.Id)
	if err != nil {
		return nil, err
	}
	if len(credentials) == 0 {
		return nil, ErrNoCredentials
	}

	challenge, err := ws.challenges.Issue(CeremonyAuthenticate, user.Id)
	if err != nil {
		return nil, err
	}

	allowed := make([]response.AllowedCredential, 0, len(credentials))
	for _, c := range credentials {
		allowed = append(allowed, response.AllowedCredential{
			Id:         c.CredentialID,
			Type:       "public-key",
			Transports: splitTransports(c.Transports),
		})
	}

	return &response.WebAuthnAuthenticateChallengeResponse{
		Challenge:        challenge,
		AllowCredentials: allowed,
		Timeout:          ceremonyTimeoutMs,
		RpId:             config.Conf.Application.WebAuthn.RpID,
	}, nil
}

// FinishAuthentication verifies a signed assertion and issues a session
// token. The challenge consumption serializes concurrent completions per
// issued challenge; the conditional counter update closes the race between
// sequentially issued challenges.
func (ws *WebAuthnService) FinishAuthentication(req *request.WebAuthnAuthenticateRequest) (*response.LoginResponse, error) {
	credential, err := ws.credentialRepo.GetByCredentialID(ws.db, req.CredentialId)
	if err != nil {
		return nil, ErrCredentialNotFound
	}

	challenge, err := ws.challenges.Consume(CeremonyAuthenticate, credential.UserID)
	if err != nil {
		return nil, err
	}

	clientData, err := parseClientDataJSON(req.ClientDataJSON)
	if err != nil {
		ws.logger.Warn("webauthn client data rejected",
			zap.Uint("user_id", credential.UserID), zap.Error(err))
		return nil, ErrChallengeMismatch
	}
	if clientData.Challenge != challenge {
		ws.logger.Warn("webauthn challenge mismatch",
			zap.Uint("user_id", credential.UserID))
		return nil, ErrChallengeMismatch
	}
	if rpOrigin := config.Conf.Application.WebAuthn.RpOrigin; rpOrigin != "" && clientData.Origin != rpOrigin {
		ws.logger.Warn("webauthn origin mismatch",
			zap.Uint("user_id", credential.UserID),
			zap.String("origin", clientData.Origin))
		return nil, ErrOriginMismatch
	}

	if !verifySignature(req.AuthenticatorData, req.ClientDataJSON, req.Signature, credential.PublicKey) {
		ws.logger.Warn("webauthn signature verification failed",
			zap.Uint("user_id", credential.UserID))
		return nil, ErrInvalidSignature
	}

	counter := extractCounter(req.AuthenticatorData)
	if counter <= credential.Counter {
		ws.logger.Warn("webauthn counter did not advance",
			zap.Uint("user_id", credential.UserID),
			zap.Int64("stored", credential.Counter),
			zap.Int64("received", counter))
		return nil, ErrCounterReplay
	}

	updated, err := ws.credentialRepo.UpdateCounter(ws.db, credential.CredentialID, counter, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrCounterReplay
	}

	token, err := ws.jwt.GenerateUserToken(&credential.User)
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{
		Token: token,
		User:  response.NewUserDto(&credential.User),
	}, nil
}

type clientData struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
	Origin    string `json:"origin"`
}

func parseClientDataJSON(encoded string) (*clientData, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var data clientData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Challenge == "" {
		return nil, errors.New("client data has no challenge")
	}
	return &data, nil
}

// verifySignature checks the assertion signature over the standard WebAuthn
// signature base, authenticatorData || SHA-256(clientDataJSON), using
// ECDSA P-256 with SHA-256 against the stored SubjectPublicKeyInfo key.
// Decoding and verification failures all collapse to false; nothing in
// here may escape as an error or panic.
func verifySignature(authenticatorData, clientDataJSON, signature, publicKey string) bool {
	authData, err := base64.StdEncoding.DecodeString(authenticatorData)
	if err != nil {
		return false
	}
	clientDataRaw, err := base64.StdEncoding.DecodeString(clientDataJSON)
	if err != nil {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	pubKeyDer, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return false
	}

	parsed, err := x509.ParsePKIXPublicKey(pubKeyDer)
	if err != nil {
		return false
	}
	ecdsaKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return false
	}

	clientDataHash := sha256.Sum256(clientDataRaw)
	signed := make([]byte, 0, len(authData)+len(clientDataHash))
	signed = append(signed, authData...)
	signed = append(signed, clientDataHash[:]...)

	digest := sha256.Sum256(signed)
	return ecdsa.VerifyASN1(ecdsaKey, digest[:], sig)
}

// extractCounter reads the 32-bit big-endian signature counter at bytes
// 33..37 of the authenticator data. Structures shorter than 37 bytes count
// as zero, which the strictly-increasing check then rejects.
func extractCounter(authenticatorData string) int64 {
	data, err := base64.StdEncoding.DecodeString(authenticatorData)
	if err != nil {
		return 0
	}
	if len(data) < 37 {
		return 0
	}
	return int64(binary.BigEndian.Uint32(data[33:37]))
}

func splitTransports(transports string) []string {
	if transports == "" {
		return []string{}
	}
	return strings.Split(transports, ",")
}
