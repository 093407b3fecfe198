package tag

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

type TagService struct {
	tagRepo *TagRepository
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{
		tagRepo: NewTagRepository(db),
	}
}

// ListTags 获取所有标签
func (s *TagService) ListTags() ([]dto.TagResponse, *response.BusinessError) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, response.InternalError("获取标签列表失败", err)
	}

	result := make([]dto.TagResponse, len(tags))
	for i := range tags {
		result[i] = dto.NewTagResponse(&tags[i])
	}
	return result, nil
}

// CreateTag 创建标签，颜色默认 blue
func (s *TagService) CreateTag(req dto.CreateTagRequest) (*dto.TagResponse, *response.BusinessError) {
	if req.Name == "" {
		return nil, response.ValidationError("标签名称不能为空")
	}

	exists, err := s.tagRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, response.InternalError("数据库查询错误", err)
	}
	if exists {
		return nil, response.ConflictError("标签已存在")
	}

	color := req.Color
	if color == "" {
		color = "blue"
	}

	tag := article.Tag{
		Name:      req.Name,
		Color:     color,
		CreatedAt: time.Now(),
	}
	if err := s.tagRepo.Create(&tag); err != nil {
		// 并发创建同名标签由唯一约束兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ConflictError("标签已存在")
		}
		return nil, response.InternalError("标签创建失败", err)
	}

	resp := dto.NewTagResponse(&tag)
	return &resp, nil
}
