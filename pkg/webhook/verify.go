package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
	"unicode"
)

const (
	headerSignature = "Twitch-Eventsub-Message-Signature"
	headerTimestamp = "Twitch-Eventsub-Message-Timestamp"
	headerMessageID = "Twitch-Eventsub-Message-Id"
	headerType      = "Twitch-Eventsub-Message-Type"

	signaturePrefix = "sha256="

	// Twitch retries deliveries for up to 10 minutes, so a message id can
	// legitimately reappear within that horizon.
	replayWindow = 10 * time.Minute

	maxTimestampAge    = 600 * time.Second
	maxTimestampFuture = 180 * time.Second
)

func headerValue(h http.Header, name string) (string, error) {
	val := h.Get(name)
	if val == "" {
		return "", errBadRequest("missing header: %s", name)
	}
	for _, r := range val {
		if r > unicode.MaxASCII {
			return "", errBadRequest("invalid header value for %q", name)
		}
	}
	return val, nil
}

// verify authenticates one webhook request: replay suppression, timestamp
// freshness, and the HMAC signature over message_id || timestamp || body.
// It returns the parsed timestamp, which handlers use as the canonical
// event time.
func (e *Engine) verify(h http.Header, body []byte) (time.Time, error) {
	signature, err := headerValue(h, headerSignature)
	if err != nil {
		return time.Time{}, err
	}
	timestampStr, err := headerValue(h, headerTimestamp)
	if err != nil {
		return time.Time{}, err
	}
	messageID, err := headerValue(h, headerMessageID)
	if err != nil {
		return time.Time{}, err
	}

	// Insert is the one-shot idempotency primitive; a separate
	// contains-then-insert would race with concurrent deliveries.
	if !e.recent.Insert(messageID, replayWindow) {
		return time.Time{}, errDuplicateMessage
	}

	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return time.Time{}, errBadRequest("invalid timestamp %q: %v", timestampStr, err)
	}

	age := e.now().Sub(timestamp)
	if age >= maxTimestampAge {
		return time.Time{}, errVerification("timestamp too old: %s", timestampStr)
	}
	if -age > maxTimestampFuture {
		return time.Time{}, errVerification("timestamp in the future: %s", timestampStr)
	}

	hexSig, ok := strings.CutPrefix(signature, signaturePrefix)
	if !ok {
		return time.Time{}, errVerification("signature missing %q prefix", signaturePrefix)
	}
	received, err := hex.DecodeString(hexSig)
	if err != nil {
		return time.Time{}, errVerification("signature is not hex: %v", err)
	}

	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestampStr))
	mac.Write(body)
	if !hmac.Equal(received, mac.Sum(nil)) {
		return time.Time{}, errVerification("signature mismatch")
	}

	return timestamp.UTC(), nil
}
