package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fishperson113/letslearn-backend/config"

	"github.com/go-resty/resty/v2"
)

// MeetingClient talks to the external meeting provider to mint join links
// for meeting topics. It satisfies services.MeetingLinker.
type MeetingClient struct {
	client *resty.Client
}

func NewMeetingClient() *MeetingClient {
	return &MeetingClient{
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

// JoinURL requests a meeting room from the provider and returns its join
// link. Callers treat any error as "no link yet", so failures here never
// block topic creation.
func (m *MeetingClient) JoinURL(ctx context.Context, title string) (string, error) {
	apiURL := config.AppConfig.MeetingApiURL
	if apiURL == "" {
		return "", fmt.Errorf("meeting provider not configured")
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+config.AppConfig.MeetingApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"topic": title}).
		Post(apiURL + "/meetings")
	if err != nil {
		return "", fmt.Errorf("failed to create meeting: %v", err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return "", fmt.Errorf("meeting API error: %s", resp.String())
	}

	var meetingResp struct {
		JoinURL string `json:"join_url"`
	}
	if err := json.Unmarshal(resp.Body(), &meetingResp); err != nil {
		return "", fmt.Errorf("failed to parse meeting response: %v", err)
	}
	if meetingResp.JoinURL == "" {
		return "", fmt.Errorf("meeting API returned no join url")
	}

	return meetingResp.JoinURL, nil
}
