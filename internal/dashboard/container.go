package dashboard

import (
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/insight"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

type DashboardContainer struct {
	Handler *Handler
}

func NewDashboardContainer(habits habit.Service, checkins checkin.Service, insights insight.Service, now util.Clock) *DashboardContainer {
	service := NewService(habits, checkins, insights, now)
	return &DashboardContainer{Handler: NewHandler(service)}
}
