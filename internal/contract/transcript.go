package contract

import "github.com/alexanderramin/gradebook/internal/domain"

type TranscriptRequest struct {
	StudentRef string
	Order      string
}

func NewTranscriptRequest(studentRef string) TranscriptRequest {
	return TranscriptRequest{
		StudentRef: studentRef,
		Order:      string(domain.Ascending),
	}
}

type TranscriptResponse struct {
	StudentID  string
	Transcript domain.Transcript
}
