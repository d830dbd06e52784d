package assessment

import util "github.com/saulo-duarte/menteviva-api/internal/utils"

type AssessmentContainer struct {
	Handler *Handler
	Service Service
}

func NewAssessmentContainer(repo SubmissionRepository, now util.Clock) *AssessmentContainer {
	service := NewService(repo, now)
	handler := NewHandler(service)

	return &AssessmentContainer{
		Handler: handler,
		Service: service,
	}
}
