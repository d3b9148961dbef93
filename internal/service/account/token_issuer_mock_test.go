package account

import (
	"sync"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(credentialID domain.ID, email string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			CredentialID domain.ID
			Email        string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(credentialID domain.ID, email string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		CredentialID domain.ID
		Email        string
	}{
		CredentialID: credentialID,
		Email:        email,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(credentialID, email)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	CredentialID domain.ID
	Email        string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
