// Package emergency dispatches alert SMS through Twilio and exposes the
// configured emergency contact number. Independent of navigation state.
package emergency

import (
	"errors"
	"os"
	"time"

	"github.com/twilio/twilio-go"
	tclient "github.com/twilio/twilio-go/client"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

const requestTimeout = 15 * time.Second

var (
	AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	AuthToken  = os.Getenv("TWILIO_AUTH_TOKEN")
	FromNumber = os.Getenv("TWILIO_PHONE_NUMBER")

	// Number is the static contact the client dials locally.
	Number = emergencyNumber()

	restClient *twilio.RestClient
)

func emergencyNumber() string {
	if v := os.Getenv("EMERGENCY_NUMBER"); len(v) > 0 {
		return v
	}
	return "+5493816694178"
}

// Init initializes the SMS client
func Init() error {
	if len(AccountSID) == 0 || len(AuthToken) == 0 {
		return errors.New("missing TWILIO_ACCOUNT_SID or TWILIO_AUTH_TOKEN")
	}

	c := &tclient.Client{
		Credentials: tclient.NewCredentials(AccountSID, AuthToken),
	}
	c.SetTimeout(requestTimeout)

	restClient = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: AccountSID,
		Password: AuthToken,
		Client:   c,
	})
	return nil
}

// DeliveryResult is what the provider reported back for a dispatched alert.
type DeliveryResult struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

// SendAlert sends an emergency SMS. Failures are returned to the caller
// with provider detail, never retried here.
func SendAlert(to, body string) (*DeliveryResult, error) {
	if restClient == nil {
		return nil, errors.New("SMS client not initialized")
	}

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(FromNumber)
	params.SetBody(body)

	msg, err := restClient.Api.CreateMessage(params)
	if err != nil {
		return nil, err
	}

	result := &DeliveryResult{}
	if msg.Sid != nil {
		result.Sid = *msg.Sid
	}
	if msg.Status != nil {
		result.Status = *msg.Status
	}
	return result, nil
}
