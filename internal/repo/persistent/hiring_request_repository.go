package persistent

import (
	"errors"
	"fmt"

	"hireflow/internal/entity"
	"hireflow/internal/model"

	"gorm.io/gorm"
)

type HiringRequestRepository interface {
	Create(request *entity.HiringRequest) error
	GetByID(id string) (*entity.HiringRequest, error)
	Update(request *entity.HiringRequest) error
	List(limit, offset int) ([]*entity.HiringRequest, int64, error)
}

type hiringRequestRepository struct {
	db *gorm.DB
}

func NewHiringRequestRepository(db *gorm.DB) HiringRequestRepository {
	return &hiringRequestRepository{db: db}
}

func (r *hiringRequestRepository) Create(request *entity.HiringRequest) error {
	requestModel := ToHiringRequestModel(request)
	if err := r.db.Create(requestModel).Error; err != nil {
		return err
	}
	*request = *ToHiringRequestEntity(requestModel)
	return nil
}

func (r *hiringRequestRepository) GetByID(id string) (*entity.HiringRequest, error) {
	var requestModel model.HiringRequestModel
	if err := r.db.Where("id = ?", id).First(&requestModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hiring request %s: %w", id, entity.ErrNotFound)
		}
		return nil, err
	}
	return ToHiringRequestEntity(&requestModel), nil
}

func (r *hiringRequestRepository) Update(request *entity.HiringRequest) error {
	requestModel := ToHiringRequestModel(request)
	if err := r.db.Save(requestModel).Error; err != nil {
		return err
	}
	*request = *ToHiringRequestEntity(requestModel)
	return nil
}

func (r *hiringRequestRepository) List(limit, offset int) ([]*entity.HiringRequest, int64, error) {
	var requestModels []model.HiringRequestModel
	query := r.db.Model(&model.HiringRequestModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*entity.HiringRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToHiringRequestEntity(&requestModels[i])
	}
	return requests, total, nil
}
