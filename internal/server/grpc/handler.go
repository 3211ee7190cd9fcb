package grpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/travelpath/server/internal/common"
	pb "github.com/travelpath/server/internal/proto"
	"github.com/travelpath/server/internal/server/models"
)

// toStatus maps service errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorStorage):
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func recordToProto(r *models.PhotoRecord) *pb.PhotoRecord {
	return &pb.PhotoRecord{
		Id:          r.ID,
		PlaceId:     r.PlaceID,
		OwnerId:     r.OwnerID,
		StorageKey:  r.StorageKey,
		ContentHash: r.ContentHash,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		UploadedAt:  r.UploadedAt.Unix(),
		Source:      string(r.Source),
	}
}

func (s *GRPCServer) UploadPhoto(ctx context.Context, req *pb.UploadPhotoRequest) (*pb.UploadPhotoResponse, error) {

	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	record, err := s.photos.Ingest(ctx, ownerID, req.PlaceId, req.ContentType, req.Data, models.SourcePartner)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Photo uploaded", "place_id", req.PlaceId, "key", record.StorageKey)
	return &pb.UploadPhotoResponse{Record: recordToProto(record)}, nil
}

// UploadPhotoBatch ingests a client stream of photos. Items are processed in
// arrival order; one bad item fails its slot, not the batch. A cancelled
// stream stops processing and discards the summary.
func (s *GRPCServer) UploadPhotoBatch(stream grpc.ClientStreamingServer[pb.UploadPhotoRequest, pb.BatchUploadSummary]) error {

	ctx := stream.Context()
	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing identity")
	}

	summary := &pb.BatchUploadSummary{}
	index := int32(0)

	for {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}

		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		result := &pb.UploadItemResult{Index: index}
		record, err := s.photos.Ingest(ctx, ownerID, req.PlaceId, req.ContentType, req.Data, models.SourcePartner)
		if err != nil {
			s.logger.Warn(ctx, "Batch item failed", "index", index, "error", err.Error())
			result.Error = err.Error()
			summary.Failed++
		} else {
			result.Ok = true
			result.Record = recordToProto(record)
			summary.Succeeded++
		}

		summary.Results = append(summary.Results, result)
		index++
	}

	s.logger.Info(ctx, "Batch processed", "succeeded", summary.Succeeded, "failed", summary.Failed)
	return stream.SendAndClose(summary)
}
