//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
)

// Default provider fixtures. Photoshop has one duration and one location so
// the wizard fills both in; 2025-03-14 10:00 and 12:00 Athens are open.
const (
	DefaultEventTypes = `{"event_types":[
		{"id":1,"slug":"blender-private","title":"Blender","length":60,
		 "locations":[{"type":"inPerson","address":"Athens"},{"type":"integrations:google:meet"}],
		 "metadata":{"multipleDuration":[60,120]}},
		{"id":2,"slug":"photoshop-private","title":"Photoshop","length":60,
		 "locations":[{"type":"inPerson","address":"Studio 4"}]},
		{"id":10,"slug":"group-blender","title":"Blender Group","length":120,"seatsPerTimeSlot":8,
		 "description":"****Running Period:**** March - June\n****Cost:**** €120",
		 "locations":[{"type":"inPerson","address":"Athens"}]},
		{"id":99,"slug":"intro-call","title":"Intro call","length":15,"locations":[]}
	]}`
	DefaultSlots = `{"slots":{
		"2025-03-13":[{"time":"2025-03-13T09:00:00.000Z"}],
		"2025-03-14":[{"time":"2025-03-14T08:00:00.000Z"},{"time":"2025-03-14T10:00:00.000Z"}]
	}}`
	DefaultBookings = `{"bookings":[
		{"id":300,"eventTypeId":10,"status":"ACCEPTED","startTime":"2025-03-21T08:00:00.000Z",
		 "attendees":[{"email":"a@x.gr"},{"email":"b@x.gr"}]},
		{"id":301,"eventTypeId":10,"status":"CANCELLED","startTime":"2025-03-28T08:00:00.000Z",
		 "attendees":[{"email":"c@x.gr"}]}
	]}`
	DefaultCreated = `{"id":501,"uid":"bk_501","status":"ACCEPTED"}`
)

type stubReply struct {
	status int
	body   string
}

// ProviderStub is an in-process Cal.com v1 API.
type ProviderStub struct {
	server *httptest.Server

	mu       sync.Mutex
	replies  map[string]stubReply
	calls    map[string]int
	queries  map[string]url.Values
	payloads []json.RawMessage
}

func NewProviderStub() *ProviderStub {
	p := &ProviderStub{}
	p.Reset()

	r := gin.New()
	r.GET("/event-types", p.serve("event-types"))
	r.GET("/event-types/:id", p.eventType)
	r.GET("/slots", p.serve("slots"))
	r.GET("/bookings", p.serve("bookings"))
	r.POST("/bookings", p.create)

	p.server = httptest.NewServer(r)
	return p
}

func (p *ProviderStub) URL() string {
	return p.server.URL
}

func (p *ProviderStub) Close() {
	p.server.Close()
}

// Reset restores the default fixtures and forgets recorded calls.
func (p *ProviderStub) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies = map[string]stubReply{
		"event-types": {http.StatusOK, DefaultEventTypes},
		"slots":       {http.StatusOK, DefaultSlots},
		"bookings":    {http.StatusOK, DefaultBookings},
		"create":      {http.StatusOK, DefaultCreated},
	}
	p.calls = map[string]int{}
	p.queries = map[string]url.Values{}
	p.payloads = nil
}

// Reply overrides one endpoint: event-types, slots, bookings or create.
func (p *ProviderStub) Reply(endpoint string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies[endpoint] = stubReply{status, body}
}

func (p *ProviderStub) Calls(endpoint string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[endpoint]
}

// LastQuery returns the query string of the latest call to endpoint.
func (p *ProviderStub) LastQuery(endpoint string) url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queries[endpoint]
}

// Created returns every POST /bookings body received.
func (p *ProviderStub) Created() []json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]json.RawMessage(nil), p.payloads...)
}

func (p *ProviderStub) record(endpoint string, q url.Values) stubReply {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[endpoint]++
	p.queries[endpoint] = q
	return p.replies[endpoint]
}

func (p *ProviderStub) serve(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reply := p.record(endpoint, c.Request.URL.Query())
		c.Data(reply.status, "application/json", []byte(reply.body))
	}
}

// eventType answers from the event-types fixture so seat counts stay consistent.
func (p *ProviderStub) eventType(c *gin.Context) {
	reply := p.record("event-type", c.Request.URL.Query())
	p.mu.Lock()
	list := p.replies["event-types"]
	p.mu.Unlock()
	if reply.status != 0 {
		c.Data(reply.status, "application/json", []byte(reply.body))
		return
	}

	var env struct {
		EventTypes []map[string]any `json:"event_types"`
	}
	if err := json.Unmarshal([]byte(list.body), &env); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "bad fixture"})
		return
	}
	for _, et := range env.EventTypes {
		if id, ok := et["id"].(float64); ok && c.Param("id") == jsonNumber(id) {
			c.JSON(http.StatusOK, gin.H{"event_type": et})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Event type not found"})
}

func (p *ProviderStub) create(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	reply := p.record("create", c.Request.URL.Query())

	p.mu.Lock()
	p.payloads = append(p.payloads, json.RawMessage(body))
	p.mu.Unlock()

	c.Data(reply.status, "application/json", []byte(reply.body))
}

func jsonNumber(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
