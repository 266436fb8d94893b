package service

import (
	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/consts"
	"CreatorHub/internal/pkg/llm"
	"CreatorHub/internal/pkg/mongo"
	"CreatorHub/internal/pkg/redis"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// GenerateCooldown 单用户两次生成之间的最小间隔
const GenerateCooldown = 3 * time.Second

type ContentService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateContentDTO) (*dto.ContentIdeaDTO, error)
	GetBank(ctx context.Context, userID string, query *dto.ContentBankQueryDTO) (*dto.ContentBankDTO, error)
	GetByID(ctx context.Context, userID string, id string) (*dto.ContentIdeaDTO, error)
	Delete(ctx context.Context, userID string, id string) error
	Niches() []string
}

type contentServiceImpl struct {
	contentRepo mongo.ContentRepo
}

func NewContentService(contentRepo mongo.ContentRepo) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
	}
}

// Generate 生成一条内容创意并落库
// 模型不可用时降级为模板结果，只有存储失败才对外报错。
func (s *contentServiceImpl) Generate(ctx context.Context, userID string, req *dto.GenerateContentDTO) (*dto.ContentIdeaDTO, error) {
	topic := strings.TrimSpace(req.Topic)
	niche := strings.TrimSpace(req.Niche)
	if topic == "" || !consts.NicheSet[niche] {
		return nil, ErrParamInvalid
	}

	// 简单冷却，挡住连点
	ok, err := redis.SetNX(ctx, consts.GenerateCooldownKey+userID, 1, GenerateCooldown)
	if err != nil {
		log.Warn("生成冷却检查失败", "err", err)
	} else if !ok {
		return nil, ErrTooFrequent
	}

	idea, err := llm.GenerateIdea(ctx, topic, niche)
	if err != nil {
		log.Error("内容生成失败", "topic", topic, "niche", niche, "err", err)
		return nil, ErrGenerationUnavailable
	}

	record := &mongo.ContentIdea{
		OwnerID:   userID,
		Topic:     topic,
		Niche:     niche,
		ReelIdea:  idea.ReelIdea,
		Caption:   idea.Caption,
		Hashtags:  idea.Hashtags,
		Hook:      idea.Hook,
		CreatedAt: time.Now(),
	}
	if err = s.contentRepo.Create(ctx, record); err != nil {
		log.Error("内容创意落库失败", "err", err)
		return nil, UnExpectedError
	}

	return toContentIdeaDTO(record), nil
}

// GetBank 分页查询内容库
func (s *contentServiceImpl) GetBank(ctx context.Context, userID string, query *dto.ContentBankQueryDTO) (*dto.ContentBankDTO, error) {
	if query.Page < 1 || query.Limit < 1 {
		return nil, ErrParamInvalid
	}
	if query.Niche != "" && !consts.NicheSet[query.Niche] {
		return nil, ErrParamInvalid
	}

	items, total, err := s.contentRepo.FindPage(ctx, userID, mongo.ContentQuery{
		Page:   query.Page,
		Limit:  query.Limit,
		Niche:  query.Niche,
		Search: strings.TrimSpace(query.Search),
	})
	if err != nil {
		log.Error("内容库查询失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.ContentIdeaDTO, 0, len(items))
	for _, item := range items {
		list = append(list, toContentIdeaDTO(item))
	}

	pages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		pages++
	}

	return &dto.ContentBankDTO{
		Items: list,
		Pagination: &dto.PaginationDTO{
			Current: int64(query.Page),
			Pages:   pages,
			Total:   total,
		},
	}, nil
}

// GetByID 查询单条内容创意
func (s *contentServiceImpl) GetByID(ctx context.Context, userID string, id string) (*dto.ContentIdeaDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContentNotFound
	}

	record, err := s.contentRepo.FindByID(ctx, userID, oid)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		log.Error("内容查询失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return toContentIdeaDTO(record), nil
}

// Delete 删除一条内容创意
func (s *contentServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrContentNotFound
	}

	if err = s.contentRepo.Delete(ctx, userID, oid); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return ErrContentNotFound
		}
		log.Error("内容删除失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

// Niches 返回支持的内容领域列表
func (s *contentServiceImpl) Niches() []string {
	return consts.Niches
}

func toContentIdeaDTO(record *mongo.ContentIdea) *dto.ContentIdeaDTO {
	res := &dto.ContentIdeaDTO{}
	_ = copier.Copy(res, record)
	res.ID = record.ID.Hex()
	res.CreatedAt = record.CreatedAt.Format(time.RFC3339)
	return res
}
