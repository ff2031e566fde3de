package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSignatureService signs outbound webhook bodies and derives the keyed
// digests API keys are looked up by. Both use HMAC-SHA256 with hex output.
type HMACSignatureService struct{}

func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	_, _ = mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	return hmac.Equal([]byte(s.Sign(secretKey, payload)), []byte(signature))
}

// SigningPayload is the string merchants recompute to check
// X-Webhook-Signature: EVENT_ID.TIMESTAMP.BODY
func SigningPayload(eventID, timestamp string, body []byte) string {
	return eventID + "." + timestamp + "." + string(body)
}
