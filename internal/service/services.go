package service

import (
	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/validators"
	"github.com/agrodesk/agrodesk/models"
)

type Services struct {
	AuthService      AuthService
	ClientService    RecordService[models.Client]
	FarmerService    RecordService[models.Farmer]
	TaskService      RecordService[models.Task]
	ComplaintService RecordService[models.Complaint]
	UserService      UserService
	RoleService      RoleService
	FormService      FormService
}

func NewServices(cs store.CollectionStore, cfg config.ServerConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	validator := validators.NewRecordValidator()

	return &Services{
		AuthService:      NewAuthService(cs, hasher, cfg.App, logger),
		ClientService:    newRecordService(cs, validator, clientTraits(), logger),
		FarmerService:    newRecordService(cs, validator, farmerTraits(), logger),
		TaskService:      newRecordService(cs, validator, taskTraits(), logger),
		ComplaintService: newRecordService(cs, validator, complaintTraits(), logger),
		UserService:      NewUserService(cs, hasher, validator, logger),
		RoleService:      NewRoleService(cs, logger),
		FormService:      NewFormService(cs, validator, logger),
	}
}
