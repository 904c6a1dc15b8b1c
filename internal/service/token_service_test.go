package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/pkg/config"
)

func newTokenService() *TokenService {
	return NewTokenService(config.OwnerTokenConfig{
		Secret: "test_secret",
		TTL:    time.Hour,
		Issuer: "yurtswap-api-test",
	})
}

func TestTokenServiceIssueAndValidate(t *testing.T) {
	svc := newTokenService()

	token, err := svc.Issue(ResourceListing, "listing-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Validate(token, ResourceListing, "listing-1"))
}

func TestTokenServiceRejectsWrongRecord(t *testing.T) {
	svc := newTokenService()

	token, err := svc.Issue(ResourceListing, "listing-1")
	require.NoError(t, err)

	assert.Error(t, svc.Validate(token, ResourceListing, "listing-2"))
}

func TestTokenServiceRejectsWrongResource(t *testing.T) {
	svc := newTokenService()

	token, err := svc.Issue(ResourceRoommateSearch, "search-1")
	require.NoError(t, err)

	assert.Error(t, svc.Validate(token, ResourceListing, "search-1"))
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	svc := newTokenService()

	token, err := svc.Issue(ResourceListing, "listing-1")
	require.NoError(t, err)

	other := NewTokenService(config.OwnerTokenConfig{Secret: "other_secret", TTL: time.Hour})
	assert.Error(t, other.Validate(token, ResourceListing, "listing-1"))
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService(config.OwnerTokenConfig{Secret: "test_secret", TTL: time.Nanosecond})

	token, err := svc.Issue(ResourceListing, "listing-1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.Error(t, svc.Validate(token, ResourceListing, "listing-1"))
}
