package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"sort"
	"strings"
	"sync"

	"github.com/adhika-w/trafficx/pkg/concurrent"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// frameMessage is one inbound websocket message: a base64-encoded video
// frame, optionally wrapped in a data URL.
type frameMessage struct {
	Frame string `json:"frame"`
}

type detectionMessage struct {
	Type string `json:"type"`
	detectResponse
}

type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

// readFrame reads the next text message and extracts the base64 frame.
// Clients may send either {"frame": "..."} or the bare base64 string.
func (u *User) readFrame() (string, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return "", err
	}
	if h.OpCode.IsControl() {
		return "", wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	msg := &frameMessage{}
	if err := json.Unmarshal(raw, msg); err != nil {
		// not JSON, treat the whole payload as a bare base64 frame
		return string(raw), nil
	}
	return msg.Frame, nil
}

// DetectFrame runs one frame through the detection service and writes the
// result back. Malformed frames answer with an error envelope but keep the
// connection open.
func (u *User) DetectFrame() error {
	frame, err := u.readFrame()
	if err != nil {
		u.conn.Close()
		return err
	}

	if frame == "" {
		return nil
	}

	// strip a data URL prefix like "data:image/jpeg;base64,"
	if idx := strings.IndexByte(frame, ','); idx >= 0 {
		frame = frame[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(frame)
	if err != nil {
		return u.write(envelope{"error": "Invalid base64 frame"})
	}

	dets, signal, stats, err := u.hub.detectionService.Detect(context.Background(), image)
	if err != nil {
		return u.write(envelope{"error": err.Error()})
	}

	return u.write(detectionMessage{
		Type:           "detection",
		detectResponse: NewDetectResponse(dets, signal, stats),
	})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

type Hub struct {
	mu  sync.RWMutex
	seq uint
	us  []*User
	ns  map[uint]*User

	detectionService DetectionService

	pool *concurrent.Pool
}

func NewHub(pool *concurrent.Pool, detectionService DetectionService) *Hub {
	hub := &Hub{
		pool:             pool,
		ns:               make(map[uint]*User),
		us:               make([]*User, 0),
		detectionService: detectionService,
	}

	return hub
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, oki := h.ns[user.id]; !oki {
		return
	}
	delete(h.ns, user.id)

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		h.Remove(user)
	}
}
