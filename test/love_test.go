package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/gymcycle/internal/love"
)

func (s *IntegrationTestSuite) TestLove_RequiresToken() {
	ctx := context.Background()

	status := doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/messages", "", "", nil)
	s.Equal(http.StatusUnauthorized, status)

	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/messages", "", "not-a-token", nil)
	s.Equal(http.StatusUnauthorized, status)

	// quote stays open for the lock screen
	var quote love.Quote
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/quote", "", "", &quote)
	s.Equal(http.StatusOK, status)
	s.NotEmpty(quote.Quote)
}

func (s *IntegrationTestSuite) TestLove_WrongPasscode() {
	status := doRequest(context.Background(), s.T(), s.client, http.MethodPost, "/love/unlock", `{"passcode":"11111111"}`, "", nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestLove_UnlockedFlow() {
	ctx := context.Background()
	token := unlockLove(ctx, s.T(), s.client, love.DefaultPasscode)

	var cfg map[string]string
	status := doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/config", "", token, &cfg)
	s.Require().Equal(http.StatusOK, status)
	s.NotContains(cfg, "passcode")

	status = doRequest(ctx, s.T(), s.client, http.MethodPost, "/love/messages", `{"sender":"anh","content":"nhớ em"}`, token, nil)
	s.Require().Equal(http.StatusOK, status)

	var messages []love.Message
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/messages", "", token, &messages)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotEmpty(messages)
	s.Equal("nhớ em", messages[len(messages)-1].Content)

	var dream love.Dream
	status = doRequest(ctx, s.T(), s.client, http.MethodPost, "/love/dreamlist", `{"task":"Đi Đà Lạt"}`, token, &dream)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotEmpty(dream.ID)

	var toggled struct {
		Success bool `json:"success"`
	}
	status = doRequest(ctx, s.T(), s.client, http.MethodPatch, fmt.Sprintf("/love/dreamlist/%s", dream.ID), `{"is_completed":true}`, token, &toggled)
	s.Require().Equal(http.StatusOK, status)
	s.True(toggled.Success)

	var dreams []love.Dream
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/love/dreamlist", "", token, &dreams)
	s.Require().Equal(http.StatusOK, status)
	found := false
	for _, d := range dreams {
		if d.ID == dream.ID {
			found = true
			s.True(bool(d.IsCompleted))
		}
	}
	s.True(found)
}
