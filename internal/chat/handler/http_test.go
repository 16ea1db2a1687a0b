package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "gotravel/api/v1/chat"
	"gotravel/internal/chat/models"
	"gotravel/internal/common"
	"gotravel/internal/dbmongo"
)

type fakeAttachments struct {
	mu      sync.Mutex
	seq     int
	blobs   map[string][]byte
	meta    map[string]*dbmongo.Attachment
	deleted []string
}

func newFakeAttachments() *fakeAttachments {
	return &fakeAttachments{blobs: map[string][]byte{}, meta: map[string]*dbmongo.Attachment{}}
}

func (f *fakeAttachments) Upload(_ context.Context, filename, mimeType, roomID, uploaderID string, content io.Reader) (*dbmongo.Attachment, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	att := &dbmongo.Attachment{
		ID:         fmt.Sprintf("f%d", f.seq),
		Filename:   filename,
		Size:       int64(len(data)),
		MimeType:   mimeType,
		Type:       common.AttachmentType(mimeType),
		RoomID:     roomID,
		UploadedBy: uploaderID,
		UploadedAt: time.Now().UTC(),
	}
	f.blobs[att.ID] = data
	f.meta[att.ID] = att
	return att, nil
}

func (f *fakeAttachments) Download(_ context.Context, fileID string) (io.ReadCloser, *dbmongo.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	att, ok := f.meta[fileID]
	if !ok {
		return nil, nil, common.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(f.blobs[fileID])), att, nil
}

func (f *fakeAttachments) Delete(_ context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, fileID)
	delete(f.meta, fileID)
	f.deleted = append(f.deleted, fileID)
	return nil
}

type httpEnv struct {
	live        *liveService
	attachments *fakeAttachments
	server      *httptest.Server
}

func newHTTPEnv(t *testing.T, withAttachments bool) *httpEnv {
	t.Helper()
	live := newLiveService(t)
	env := &httpEnv{live: live}

	var store AttachmentStore
	if withAttachments {
		env.attachments = newFakeAttachments()
		store = env.attachments
	}
	gateway := NewHTTPServer(live.service, live.broker, store, 1<<20, quietLogger())
	env.server = httptest.NewServer(gateway.Router(common.NewAuthenticator(nil, false)))
	t.Cleanup(env.server.Close)
	return env
}

func (e *httpEnv) do(t *testing.T, method, path, accountID string, body proto.Message) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := protojson.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if accountID != "" {
		req.Header.Set(common.DevUserHeader, accountID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeProto(t *testing.T, resp *http.Response, m proto.Message) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, protojson.Unmarshal(raw, m))
}

func (e *httpEnv) openRoom(t *testing.T, caller, target string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/v1/rooms", caller, &pb.OpenRoomRequest{TargetRef: target})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out pb.OpenRoomResponse
	decodeProto(t, resp, &out)
	return out.Room.Id
}

func TestHTTP_HealthIsPublic(t *testing.T) {
	env := newHTTPEnv(t, false)

	resp := env.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTP_OpenRoomByGuideRef(t *testing.T) {
	env := newHTTPEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/v1/rooms", "u3", &pb.OpenRoomRequest{TargetRef: "guide:g7"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out pb.OpenRoomResponse
	decodeProto(t, resp, &out)
	assert.Equal(t, "u3", out.Room.ParticipantLow)
	assert.Equal(t, "u9", out.Room.ParticipantHigh)
	assert.Equal(t, "u9", out.CounterpartId)
	assert.False(t, out.Room.CreatedAt.AsTime().IsZero())

	resp = env.do(t, http.MethodPost, "/api/v1/rooms", "u3", &pb.OpenRoomRequest{TargetRef: "guide:missing"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHTTP_MessageFlow(t *testing.T) {
	env := newHTTPEnv(t, false)
	roomID := env.openRoom(t, "u1", "u2")

	resp := env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/messages", "u1", &pb.SendMessageRequest{Body: "Hello"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/messages", "u1", &pb.SendMessageRequest{Body: "x", Type: "video"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID+"/messages", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed pb.ListMessagesResponse
	decodeProto(t, resp, &listed)
	require.Len(t, listed.Messages, 1)
	assert.Equal(t, "Hello", listed.Messages[0].Body)

	resp = env.do(t, http.MethodGet, "/api/v1/rooms", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rooms pb.ListRoomsResponse
	decodeProto(t, resp, &rooms)
	require.Len(t, rooms.Rooms, 1)
	assert.Equal(t, int64(1), rooms.Rooms[0].UnreadCount)
	assert.Equal(t, "Hello", rooms.Rooms[0].Room.LastMessage)

	resp = env.do(t, http.MethodPut, "/api/v1/rooms/"+roomID+"/read", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var read pb.MarkReadResponse
	decodeProto(t, resp, &read)
	assert.Equal(t, int64(1), read.Updated)

	resp = env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID+"/messages", "u3", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHTTP_ResponsesUseProtoFieldNames(t *testing.T) {
	env := newHTTPEnv(t, false)
	roomID := env.openRoom(t, "u1", "u2")

	resp := env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/messages", "u1", &pb.SendMessageRequest{Body: "Hello"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var raw map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	msg := raw["message"]
	assert.Equal(t, roomID, msg["room_id"])
	assert.Equal(t, "u1", msg["sender_id"])
	assert.Equal(t, false, msg["is_read"])
	createdAt, ok := msg["created_at"].(string)
	require.True(t, ok, "timestamps render as RFC 3339 strings")
	_, err := time.Parse(time.RFC3339Nano, createdAt)
	assert.NoError(t, err)
}

func TestHTTP_RejectsMalformedBody(t *testing.T) {
	env := newHTTPEnv(t, false)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/v1/rooms", strings.NewReader(`{"target_ref": 7}`))
	require.NoError(t, err)
	req.Header.Set(common.DevUserHeader, "u1")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_BlockStopsSending(t *testing.T) {
	env := newHTTPEnv(t, false)
	roomID := env.openRoom(t, "u1", "u2")

	resp := env.do(t, http.MethodPut, "/api/v1/blocks/u1", "u2", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/messages", "u1", &pb.SendMessageRequest{Body: "hi"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/v1/blocks/u1", "u2", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/messages", "u1", &pb.SendMessageRequest{Body: "hi"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHTTP_WebSocketReceivesRoomMessages(t *testing.T) {
	env := newHTTPEnv(t, false)
	roomID := env.openRoom(t, "u1", "u2")

	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/api/v1/rooms/" + roomID + "/ws"
	header := http.Header{}
	header.Set(common.DevUserHeader, "u2")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer ws.Close()

	assert.Eventually(t, func() bool {
		return env.live.broker.SubscriberCount(roomID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	_, err = env.live.service.SendMessage(context.Background(), roomID, "u1", "Hello", common.MessageTypeText)
	require.NoError(t, err)

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got models.Message
	require.NoError(t, ws.ReadJSON(&got))
	assert.Equal(t, "Hello", got.Body)
	assert.Equal(t, "u1", got.SenderID)

	header.Set(common.DevUserHeader, "u3")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func uploadRequest(t *testing.T, url, accountID, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(common.DevUserHeader, accountID)
	return req
}

func TestHTTP_Attachments(t *testing.T) {
	env := newHTTPEnv(t, true)
	roomID := env.openRoom(t, "u1", "u2")
	content := append([]byte("\x89PNG\r\n\x1a\n"), []byte("fake image data")...)

	req := uploadRequest(t, env.server.URL+"/api/v1/rooms/"+roomID+"/attachments", "u1", "photo.png", content)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded uploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	var message pb.Message
	require.NoError(t, protojson.Unmarshal(uploaded.Message, &message))
	assert.Equal(t, "image/png", uploaded.Attachment.MimeType)
	assert.Equal(t, "image", message.Type)
	assert.Equal(t, uploaded.Attachment.ID, message.Body)

	download := env.do(t, http.MethodGet, "/api/v1/attachments/"+uploaded.Attachment.ID, "u2", nil)
	require.Equal(t, http.StatusOK, download.StatusCode)
	assert.Equal(t, "image/png", download.Header.Get("Content-Type"))
	body, err := io.ReadAll(download.Body)
	require.NoError(t, err)
	assert.Equal(t, content, body)

	outsider := env.do(t, http.MethodGet, "/api/v1/attachments/"+uploaded.Attachment.ID, "u3", nil)
	assert.Equal(t, http.StatusForbidden, outsider.StatusCode)

	missing := env.do(t, http.MethodGet, "/api/v1/attachments/nope", "u2", nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestHTTP_AttachmentRemovedWhenSendFails(t *testing.T) {
	env := newHTTPEnv(t, true)
	roomID := env.openRoom(t, "u1", "u2")
	require.NoError(t, env.live.store.Block(context.Background(), "u2", "u1"))

	req := uploadRequest(t, env.server.URL+"/api/v1/rooms/"+roomID+"/attachments", "u1", "notes.txt", []byte("hi"))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, []string{"f1"}, env.attachments.deleted)
}

func TestHTTP_AttachmentsDisabled(t *testing.T) {
	env := newHTTPEnv(t, false)
	roomID := env.openRoom(t, "u1", "u2")

	resp := env.do(t, http.MethodGet, "/api/v1/attachments/f1", "u1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req := uploadRequest(t, env.server.URL+"/api/v1/rooms/"+roomID+"/attachments", "u1", "a.txt", []byte("x"))
	upload, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer upload.Body.Close()
	assert.Equal(t, http.StatusNotFound, upload.StatusCode)
}
