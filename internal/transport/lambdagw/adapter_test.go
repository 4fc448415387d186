package lambdagw

import (
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type AdapterTestSuite struct {
	suite.Suite
	adapter *Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Header("X-Request-Id", c.GetHeader("X-Request-Id"))
		c.JSON(http.StatusCreated, gin.H{
			"body":  string(body),
			"topic": c.Query("topic"),
		})
	})
	r.GET("/cookie", func(c *gin.Context) {
		c.SetCookie("session", "abc", 60, "/", "", true, true)
		c.Status(http.StatusNoContent)
	})
	r.GET("/binary", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/octet-stream", []byte{0xff, 0xfe, 0x00})
	})

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.adapter = New(r, l)
}

func (s *AdapterTestSuite) event(method, path, query, body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RawPath:        path,
		RawQueryString: query,
		Headers:        map[string]string{"content-type": "application/json", "x-request-id": "req-1"},
		Body:           body,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RequestID: "evt-1",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   method,
				Path:     path,
				SourceIP: "10.0.0.1",
			},
		},
	}
}

func (s *AdapterTestSuite) TestForwardsRequest() {
	resp, err := s.adapter.Handle(s.T().Context(), s.event(http.MethodPost, "/webhook", "topic=payment", `{"a":1}`))
	s.Require().NoError(err)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("req-1", resp.Headers["X-Request-Id"])
	s.Equal("application/json; charset=utf-8", resp.Headers["Content-Type"])
	s.False(resp.IsBase64Encoded)
	s.JSONEq(`{"body":"{\"a\":1}","topic":"payment"}`, resp.Body)
}

func (s *AdapterTestSuite) TestBase64Body() {
	event := s.event(http.MethodPost, "/webhook", "", base64.StdEncoding.EncodeToString([]byte("raw")))
	event.IsBase64Encoded = true

	resp, err := s.adapter.Handle(s.T().Context(), event)
	s.Require().NoError(err)
	s.JSONEq(`{"body":"raw","topic":""}`, resp.Body)
}

func (s *AdapterTestSuite) TestInvalidBase64() {
	event := s.event(http.MethodPost, "/webhook", "", "%%%")
	event.IsBase64Encoded = true

	_, err := s.adapter.Handle(s.T().Context(), event)
	s.Error(err)
}

func (s *AdapterTestSuite) TestBinaryResponse() {
	resp, err := s.adapter.Handle(s.T().Context(), s.event(http.MethodGet, "/binary", "", ""))
	s.Require().NoError(err)
	s.True(resp.IsBase64Encoded)
	s.Equal(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0x00}), resp.Body)
}

func (s *AdapterTestSuite) TestCookiesSeparated() {
	resp, err := s.adapter.Handle(s.T().Context(), s.event(http.MethodGet, "/cookie", "", ""))
	s.Require().NoError(err)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Require().Len(resp.Cookies, 1)
	s.Contains(resp.Cookies[0], "session=abc")
	s.NotContains(resp.Headers, "Set-Cookie")
}

func (s *AdapterTestSuite) TestUnknownRoute() {
	resp, err := s.adapter.Handle(s.T().Context(), s.event(http.MethodGet, "/nope", "", ""))
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
