package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotravel/internal/common"
)

type AttachmentStorage struct {
	gridFS *gridfs.Bucket
}

func NewAttachmentStorage(mongoClient *MongoClient) *AttachmentStorage {
	return &AttachmentStorage{
		gridFS: mongoClient.GridFS,
	}
}

// Attachment describes a stored blob. The message that carries it has the
// attachment ID as its body.
type Attachment struct {
	ID         string             `json:"id"`
	Filename   string             `json:"filename"`
	Size       int64              `json:"size"`
	MimeType   string             `json:"mime_type"`
	Type       common.MessageType `json:"type"`
	RoomID     string             `json:"room_id"`
	UploadedBy string             `json:"uploaded_by"`
	UploadedAt time.Time          `json:"uploaded_at"`
}

func (s *AttachmentStorage) Upload(ctx context.Context, filename, mimeType, roomID, uploaderID string, content io.Reader) (*Attachment, error) {
	msgType := common.AttachmentType(mimeType)
	uploadedAt := time.Now().UTC()

	metadata := bson.M{
		"room_id":     roomID,
		"mime_type":   mimeType,
		"type":        msgType.String(),
		"uploaded_by": uploaderID,
		"uploaded_at": uploadedAt,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := s.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w: %v", common.ErrStoreUnavailable, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload failed: %w: %v", common.ErrStoreUnavailable, err)
	}

	return &Attachment{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		Type:       msgType,
		RoomID:     roomID,
		UploadedBy: uploaderID,
		UploadedAt: uploadedAt,
	}, nil
}

// Download opens the blob. The caller closes the returned reader.
func (s *AttachmentStorage) Download(ctx context.Context, fileID string) (io.ReadCloser, *Attachment, error) {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.gridFS.OpenDownloadStream(objectID)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, nil, fmt.Errorf("attachment %s: %w", fileID, common.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w: %v", common.ErrStoreUnavailable, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	return stream, attachmentFromFile(fileID, stream.GetFile()), nil
}

func (s *AttachmentStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return err
	}
	err = s.gridFS.DeleteContext(ctx, objectID)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return fmt.Errorf("attachment %s: %w", fileID, common.ErrNotFound)
	}
	return err
}

func parseFileID(fileID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid file ID: %w", common.ErrNotFound)
	}
	return objectID, nil
}

func attachmentFromFile(fileID string, file *gridfs.File) *Attachment {
	var metadata bson.M
	if file.Metadata != nil {
		_ = bson.Unmarshal(file.Metadata, &metadata)
	}

	return &Attachment{
		ID:         fileID,
		Filename:   file.Name,
		Size:       file.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		Type:       common.MessageType(getStringFromMap(metadata, "type")),
		RoomID:     getStringFromMap(metadata, "room_id"),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: file.UploadDate,
	}
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
