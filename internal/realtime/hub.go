package realtime

import (
	"encoding/json"
	"log"
)

type inboundMessage struct {
	client *Client
	event  Event
}

// Hub tracks every connected client and the per-user rooms used to target
// messages. All membership changes and relays run on the single Run
// goroutine, so no locking is needed; connections talk to the hub through
// its channels only.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundMessage),
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Dispatch hands a decoded client event to the hub goroutine.
func (h *Hub) Dispatch(c *Client, event Event) {
	h.inbound <- inboundMessage{client: c, event: event}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Println("[WS] [INFO] client connected:", client.ID)

		case client := <-h.unregister:
			h.drop(client)

		case msg := <-h.inbound:
			h.handleEvent(msg.client, msg.event)
		}
	}
}

func (h *Hub) handleEvent(client *Client, event Event) {
	// A read pump can outlive a drop and keep delivering events until its
	// connection actually dies. Ignore anything from a client that is no
	// longer registered; letting it rejoin a room would put its closed
	// send channel back into the fanout path.
	if !h.clients[client] {
		return
	}

	switch event.Event {
	case EventUserJoin:
		var payload UserJoinPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.UserID == "" {
			log.Println("[WS] [ERROR] invalid user_join payload")
			return
		}
		h.joinRoom(client, payload.UserID)
		log.Println("[WS] [INFO] user joined their room:", payload.UserID)

	case EventUpdateLocation:
		var payload UpdateLocationPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.UserID == "" {
			log.Println("[WS] [ERROR] invalid update_location payload")
			return
		}
		data, _ := json.Marshal(payload.Location)
		h.emitToRoom(payload.UserID, Event{Event: EventLocationUpdated, Data: data})

	case EventAlertNotification:
		// A freshly created alert, emitted by the posting client. Relay to
		// every other connected client; recipients filter against their own
		// notification radius.
		h.broadcastExcept(client, Event{Event: EventAlertNotification, Data: event.Data})

	default:
		log.Println("[WS] [ERROR] unknown event:", event.Event)
	}
}

func (h *Hub) joinRoom(client *Client, userID string) {
	if client.userID == userID {
		return
	}
	h.leaveRoom(client)
	client.userID = userID
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*Client]bool)
	}
	h.rooms[userID][client] = true
}

func (h *Hub) leaveRoom(client *Client) {
	if client.userID == "" {
		return
	}
	if room := h.rooms[client.userID]; room != nil {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, client.userID)
		}
	}
	client.userID = ""
}

func (h *Hub) emitToRoom(userID string, event Event) {
	payload, _ := json.Marshal(event)
	for client := range h.rooms[userID] {
		h.send(client, payload)
	}
}

func (h *Hub) broadcastExcept(origin *Client, event Event) {
	payload, _ := json.Marshal(event)
	for client := range h.clients {
		if client == origin {
			continue
		}
		h.send(client, payload)
	}
}

// send queues a message without blocking the hub. A client whose buffer is
// full is dropped; delivery is best-effort and at-most-once.
func (h *Hub) send(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	h.leaveRoom(client)
	delete(h.clients, client)
	close(client.send)
	log.Println("[WS] [INFO] client disconnected:", client.ID)
}
