package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MaxMessageLength is Twilio's per-message body limit. Longer plans are sent
// as ordered chunks.
const MaxMessageLength = 1600

var (
	ErrInvalidDestination = errors.New("invalid phone number format")
	ErrSendDenied         = errors.New("permission to send SMS has not been enabled")
)

// Twilio error codes for the failures the caller distinguishes.
const (
	twilioCodeInvalidTo     = 21211
	twilioCodeSMSNotEnabled = 21408
)

type messageSender interface {
	sendMessage(to, from, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
}

func (s *twilioSender) sendMessage(to, from, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)
	_, err := s.client.Api.CreateMessage(params)
	return err
}

type DeliveryResult struct {
	Simulated bool
	SID       string
	Chunks    int
}

type DeliveryService struct {
	from   string
	sender messageSender
}

// NewDeliveryService builds the WhatsApp notifier. With incomplete
// credentials the service stays in simulated mode: sends succeed without
// contacting Twilio and are marked as such.
func NewDeliveryService(accountSID, authToken, from string) *DeliveryService {
	svc := &DeliveryService{from: from}
	if accountSID != "" && authToken != "" && from != "" {
		svc.sender = &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: accountSID,
				Password: authToken,
			}),
		}
	}
	return svc
}

func (s *DeliveryService) Configured() bool {
	return s.sender != nil
}

// Send delivers message to the destination over WhatsApp, chunking per
// MaxMessageLength. Chunks are sent in order as independent messages.
func (s *DeliveryService) Send(ctx context.Context, to, message string) (*DeliveryResult, error) {
	if !s.Configured() {
		return &DeliveryResult{
			Simulated: true,
			SID:       fmt.Sprintf("simulated-%d", time.Now().UnixNano()),
			Chunks:    len(SplitMessage(message)),
		}, nil
	}

	formattedTo := FormatWhatsAppAddress(to)
	chunks := SplitMessage(message)
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.sender.sendMessage(formattedTo, s.from, chunk); err != nil {
			return nil, mapTwilioError(err)
		}
	}

	return &DeliveryResult{Chunks: len(chunks)}, nil
}

// FormatWhatsAppAddress normalizes a destination into Twilio's WhatsApp
// addressing form, stripping internal whitespace.
func FormatWhatsAppAddress(to string) string {
	stripped := strings.Join(strings.Fields(to), "")
	if strings.HasPrefix(stripped, "whatsapp:") {
		return stripped
	}
	return "whatsapp:" + stripped
}

// SplitMessage cuts message into chunks of at most MaxMessageLength
// characters, preserving order with no overlap. A message within the limit
// yields exactly one chunk; an empty message yields one empty chunk so the
// recipient still gets a message.
func SplitMessage(message string) []string {
	runes := []rune(message)
	if len(runes) <= MaxMessageLength {
		return []string{message}
	}

	var chunks []string
	for start := 0; start < len(runes); start += MaxMessageLength {
		end := start + MaxMessageLength
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func mapTwilioError(err error) error {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		switch restErr.Code {
		case twilioCodeInvalidTo:
			return fmt.Errorf("%w: %v", ErrInvalidDestination, err)
		case twilioCodeSMSNotEnabled:
			return fmt.Errorf("%w: %v", ErrSendDenied, err)
		}
	}
	return fmt.Errorf("failed to send WhatsApp message: %w", err)
}
