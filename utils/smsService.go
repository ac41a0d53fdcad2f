package utils

import (
	"fmt"
	"log"

	"github.com/SSub-jun/edu-platform-sub001/config"

	"github.com/go-resty/resty/v2"
)

// SendOTPToMobile delivers an OTP through the SMS gateway. The OTP stays valid
// for 10 minutes; the template on the gateway side renders "code|minutes".
func SendOTPToMobile(mobile, otp string) error {
	client := resty.New()

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization":    config.AppConfig.SmsApiKey,
			"route":            "dlt",
			"sender_id":        "EDUPLT",
			"message":          "197302",
			"variables_values": fmt.Sprintf("%s|10", otp),
			"flash":            "0",
			"numbers":          mobile,
		}).
		Get(config.AppConfig.SmsApiUrl)

	if err != nil {
		log.Printf("Error while sending OTP: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	log.Println("OTP sent successfully to", MaskMobile(mobile))
	return nil
}
