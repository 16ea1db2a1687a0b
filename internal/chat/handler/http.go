package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "gotravel/api/v1/chat"
	"gotravel/internal/chat/realtime"
	"gotravel/internal/chat/service"
	"gotravel/internal/common"
	"gotravel/internal/dbmongo"
)

const (
	octetStream = "application/octet-stream"
	sniffLength = 3072
)

// AttachmentStore keeps attachment blobs. *dbmongo.AttachmentStorage is the
// production implementation.
type AttachmentStore interface {
	Upload(ctx context.Context, filename, mimeType, roomID, uploaderID string, content io.Reader) (*dbmongo.Attachment, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.Attachment, error)
	Delete(ctx context.Context, fileID string) error
}

// HTTPServer is the REST and WebSocket gateway onto the chat service.
type HTTPServer struct {
	chatService   service.ChatService
	notifier      realtime.Notifier
	attachments   AttachmentStore
	maxAttachment int64
	upgrader      websocket.Upgrader
	log           *logrus.Logger
}

// NewHTTPServer builds the gateway. attachments may be nil, in which case
// the attachment routes answer 404.
func NewHTTPServer(chatService service.ChatService, notifier realtime.Notifier, attachments AttachmentStore, maxAttachment int64, log *logrus.Logger) *HTTPServer {
	return &HTTPServer{
		chatService:   chatService,
		notifier:      notifier,
		attachments:   attachments,
		maxAttachment: maxAttachment,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// Router mounts every route. Everything except health requires auth.
func (s *HTTPServer) Router(auth *common.Authenticator) *mux.Router {
	router := mux.NewRouter()
	router.Use(HTTPLogger(s.log))

	router.HandleFunc("/api/v1/health", s.health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware)

	api.HandleFunc("/rooms", s.openRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms", s.listRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomID}/messages", s.listMessages).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomID}/messages", s.sendMessage).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomID}/read", s.markRead).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomID}/ws", s.subscribe).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{accountRef}", s.block).Methods(http.MethodPut)
	api.HandleFunc("/blocks/{accountRef}", s.unblock).Methods(http.MethodDelete)

	if s.attachments != nil {
		api.HandleFunc("/rooms/{roomID}/attachments", s.uploadAttachment).Methods(http.MethodPost)
		api.HandleFunc("/attachments/{fileID}", s.serveAttachment).Methods(http.MethodGet)
	}

	return router
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) openRoom(w http.ResponseWriter, r *http.Request) {
	var req pb.OpenRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	accountID, _ := common.AccountIDFromContext(r.Context())
	handle, err := s.chatService.ResolveAndOpenRoom(r.Context(), accountID, req.TargetRef)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeProto(w, http.StatusOK, &pb.OpenRoomResponse{Room: toPBRoom(handle.Room), CounterpartId: handle.CounterpartID})
}

func (s *HTTPServer) listRooms(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	summaries, err := s.chatService.ListRooms(r.Context(), accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeProto(w, http.StatusOK, &pb.ListRoomsResponse{Rooms: toPBSummaries(summaries)})
}

func (s *HTTPServer) listMessages(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	messages, err := s.chatService.ListMessages(r.Context(), accountID, mux.Vars(r)["roomID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeProto(w, http.StatusOK, &pb.ListMessagesResponse{Messages: toPBMessages(messages)})
}

func (s *HTTPServer) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req pb.SendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msgType, ok := common.ParseMessageType(req.Type)
	if !ok {
		s.writeError(w, fmt.Errorf("%w: unsupported message type %q", common.ErrInvalidArgument, req.Type))
		return
	}
	accountID, _ := common.AccountIDFromContext(r.Context())
	msg, err := s.chatService.SendMessage(r.Context(), mux.Vars(r)["roomID"], accountID, req.Body, msgType)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeProto(w, http.StatusCreated, &pb.SendMessageResponse{Message: toPBMessage(msg)})
}

func (s *HTTPServer) markRead(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	updated, err := s.chatService.MarkRead(r.Context(), mux.Vars(r)["roomID"], accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeProto(w, http.StatusOK, &pb.MarkReadResponse{Updated: updated})
}

func (s *HTTPServer) block(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	if err := s.chatService.Block(r.Context(), accountID, mux.Vars(r)["accountRef"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) unblock(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	if err := s.chatService.Unblock(r.Context(), accountID, mux.Vars(r)["accountRef"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// subscribe upgrades to a WebSocket that receives the room's new messages.
func (s *HTTPServer) subscribe(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	roomID := mux.Vars(r)["roomID"]
	if _, err := s.chatService.EnsureParticipant(r.Context(), roomID, accountID); err != nil {
		s.writeError(w, err)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	conn := realtime.NewConnection(accountID, roomID, ws)
	logger := s.log.WithFields(logrus.Fields{"room_id": roomID, "account_id": accountID, "connection": conn.ID})
	logger.Debug("websocket subscribed")
	conn.Serve(s.notifier)
	logger.Debug("websocket closed")
}

type uploadResponse struct {
	Attachment *dbmongo.Attachment `json:"attachment"`
	Message    json.RawMessage     `json:"message"`
}

// uploadAttachment stores the multipart "file" part and posts an image or
// file message carrying the attachment id.
func (s *HTTPServer) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	roomID := mux.Vars(r)["roomID"]
	if _, err := s.chatService.EnsureParticipant(r.Context(), roomID, accountID); err != nil {
		s.writeError(w, err)
		return
	}

	if s.maxAttachment > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxAttachment)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: multipart field \"file\" is required: %v", common.ErrInvalidArgument, err))
		return
	}
	defer file.Close()

	// Sniff the leading bytes when the client sent no useful type; the
	// sniffed prefix is replayed ahead of the rest of the part.
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		s.writeError(w, fmt.Errorf("%w: unreadable upload: %v", common.ErrInvalidArgument, err))
		return
	}
	head = head[:n]

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == octetStream {
		mimeType = mimetype.Detect(head).String()
		if mimeType == octetStream {
			mimeType = contentTypeFor(header.Filename)
		}
	}
	content := io.MultiReader(bytes.NewReader(head), file)

	attachment, err := s.attachments.Upload(r.Context(), header.Filename, mimeType, roomID, accountID, content)
	if err != nil {
		s.writeError(w, err)
		return
	}

	msg, err := s.chatService.SendMessage(r.Context(), roomID, accountID, attachment.ID, attachment.Type)
	if err != nil {
		if derr := s.attachments.Delete(context.Background(), attachment.ID); derr != nil {
			s.log.WithError(derr).WithField("file_id", attachment.ID).Warn("failed to remove orphaned attachment")
		}
		s.writeError(w, err)
		return
	}
	body, err := protoJSON.Marshal(toPBMessage(msg))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &uploadResponse{Attachment: attachment, Message: body})
}

func (s *HTTPServer) serveAttachment(w http.ResponseWriter, r *http.Request) {
	accountID, _ := common.AccountIDFromContext(r.Context())
	reader, attachment, err := s.attachments.Download(r.Context(), mux.Vars(r)["fileID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer reader.Close()

	if _, err := s.chatService.EnsureParticipant(r.Context(), attachment.RoomID, accountID); err != nil {
		s.writeError(w, err)
		return
	}

	contentType := attachment.MimeType
	if contentType == "" {
		contentType = contentTypeFor(attachment.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", attachment.Size))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": attachment.Filename}))

	if _, err := io.Copy(w, reader); err != nil {
		s.log.WithError(err).WithField("file_id", attachment.ID).Warn("error streaming attachment")
	}
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return octetStream
}

var (
	protoJSON   = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
	protoDecode = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// decodeJSON reads a protojson request body. An empty body leaves m zeroed.
func decodeJSON(w http.ResponseWriter, r *http.Request, m proto.Message) bool {
	body, err := io.ReadAll(r.Body)
	if err == nil && len(bytes.TrimSpace(body)) > 0 {
		err = protoDecode.Unmarshal(body, m)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}

func (s *HTTPServer) writeError(w http.ResponseWriter, err error) {
	code := common.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func writeProto(w http.ResponseWriter, code int, m proto.Message) {
	body, err := protoJSON.Marshal(m)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
