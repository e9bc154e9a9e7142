package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gradebook/internal/contract"
	"github.com/alexanderramin/gradebook/internal/domain"
)

type reportService struct {
	students StudentService
	observer UseCaseObserver
}

func NewReportService(students StudentService, observers ...UseCaseObserver) ReportService {
	return &reportService{
		students: students,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Progression(ctx context.Context, ref string) (resp *contract.ProgressionResponse, err error) {
	fields := map[string]any{"student": ref}
	defer observe(ctx, s.observer, "progression", time.Now(), fields, &err)

	var student *domain.Student
	student, err = s.students.Load(ctx, ref)
	if err != nil {
		return nil, err
	}

	resp = buildProgression(student)
	fields["progression"] = string(resp.Progression)
	return resp, nil
}

func (s *reportService) Transcript(ctx context.Context, req contract.TranscriptRequest) (resp *contract.TranscriptResponse, err error) {
	fields := map[string]any{"student": req.StudentRef, "order": req.Order}
	defer observe(ctx, s.observer, "transcript", time.Now(), fields, &err)

	var student *domain.Student
	student, err = s.students.Load(ctx, req.StudentRef)
	if err != nil {
		return nil, err
	}

	t := domain.BuildTranscript(student, req.Order)
	fields["rows"] = len(t.Assignments)
	if len(t.Warnings) > 0 {
		fields["order_fallback"] = true
	}
	return &contract.TranscriptResponse{
		StudentID:  student.ID,
		Transcript: t,
	}, nil
}

func buildProgression(student *domain.Student) *contract.ProgressionResponse {
	resp := &contract.ProgressionResponse{
		StudentID:   student.ID,
		StudentName: student.Name,
		Formative: contract.GroupScoreView{
			Type:      domain.Formative,
			Score:     student.GroupScore(domain.Formative),
			Threshold: domain.FormativePassThreshold,
		},
		Summative: contract.GroupScoreView{
			Type:      domain.Summative,
			Score:     student.GroupScore(domain.Summative),
			Threshold: domain.SummativePassThreshold,
		},
		Progression:   student.CheckProgression(),
		Resubmissions: student.ResubmissionEligible(),
	}
	for _, a := range student.Assignments() {
		switch a.Type {
		case domain.Formative:
			resp.Formative.Count++
		case domain.Summative:
			resp.Summative.Count++
		}
	}
	return resp
}
