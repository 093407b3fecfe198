package article

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/pkg/response"
)

// 摘要取内容前 200 个字符
const excerptLength = 200

type ArticleService struct {
	db          *gorm.DB
	articleRepo *ArticleRepository
	tagRepo     *TagRepository
	likeRepo    *LikeRepository
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{
		db:          db,
		articleRepo: NewArticleRepository(db),
		tagRepo:     NewTagRepository(db),
		likeRepo:    NewLikeRepository(db),
	}
}

// makeExcerpt 派生摘要：内容超长取前200字符加省略号，否则原样返回
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "..."
	}
	return content
}

func validStatus(status string) bool {
	switch status {
	case article.StatusDraft, article.StatusPublished, article.StatusArchived:
		return true
	}
	return false
}

// toResponse 组装文章对外表示：作者用户名与标签名列表来自关联查询
func (s *ArticleService) toResponse(art *article.Article) dto.ArticleResponse {
	authorName := s.articleRepo.GetAuthorName(art.AuthorID)
	tags, _ := s.tagRepo.GetArticleTagNames(art.ID)
	return dto.NewArticleResponse(art, authorName, tags)
}

func (s *ArticleService) toResponseList(articles []article.Article) []dto.ArticleResponse {
	items := make([]dto.ArticleResponse, len(articles))
	for i := range articles {
		items[i] = s.toResponse(&articles[i])
	}
	return items
}

// CreateArticle 创建文章，标签不存在时自动创建
// 文章与标签关联在一个事务内写入，任一步失败全部回滚
func (s *ArticleService) CreateArticle(req dto.CreateArticleRequest) (*dto.ArticleResponse, *response.BusinessError) {
	if req.Title == "" {
		return nil, response.ValidationError("缺少必填字段: title")
	}
	if req.Content == "" {
		return nil, response.ValidationError("缺少必填字段: content")
	}
	if req.AuthorID == 0 {
		return nil, response.ValidationError("缺少必填字段: author_id")
	}

	status := req.Status
	if status == "" {
		status = article.StatusPublished
	}
	if !validStatus(status) {
		return nil, response.ValidationError("无效的文章状态")
	}

	art := &article.Article{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  makeExcerpt(req.Content),
		AuthorID: req.AuthorID,
		Status:   status,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.articleRepo.WithTx(tx).Create(art); err != nil {
			return err
		}

		return s.attachTags(tx, art.ID, req.Tags)
	})
	if err != nil {
		return nil, response.InternalError("创建文章失败", err)
	}

	resp := s.toResponse(art)
	return &resp, nil
}

// attachTags 为文章建立标签关联，标签不存在时自动创建
// 请求内重复的标签名只处理一次，避免触发关联表唯一约束
func (s *ArticleService) attachTags(tx *gorm.DB, articleID uint, tags []string) error {
	tagRepo := s.tagRepo.WithTx(tx)
	seen := make(map[string]struct{}, len(tags))
	for _, tagName := range tags {
		if tagName == "" {
			continue
		}
		if _, ok := seen[tagName]; ok {
			continue
		}
		seen[tagName] = struct{}{}

		tag, err := tagRepo.FindOrCreateTag(tagName)
		if err != nil {
			return err
		}
		if err := tagRepo.AddArticleTag(articleID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetArticle 获取文章详情，每次成功访问阅读量 +1（不做访客去重）
func (s *ArticleService) GetArticle(id uint) (*dto.ArticleResponse, *response.BusinessError) {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.InternalError("获取文章失败", err)
	}

	if err := s.articleRepo.IncrementViews(id); err != nil {
		return nil, response.InternalError("更新阅读量失败", err)
	}

	// 重新读取，返回增加后的阅读量
	art, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, response.InternalError("获取文章失败", err)
	}

	resp := s.toResponse(art)
	return &resp, nil
}

// ListArticles 已发布文章分页列表，可按标签或作者过滤
func (s *ArticleService) ListArticles(page, perPage int, tagName, authorName string) (*dto.ArticleListResponse, *response.BusinessError) {
	offset := (page - 1) * perPage

	articles, total, err := s.articleRepo.List(offset, perPage, tagName, authorName)
	if err != nil {
		return nil, response.InternalError("获取文章列表失败", err)
	}

	return &dto.ArticleListResponse{
		Articles:    s.toResponseList(articles),
		Total:       total,
		Pages:       dto.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

// UpdateArticle 部分更新文章，内容变更时重新计算摘要
func (s *ArticleService) UpdateArticle(id uint, req dto.UpdateArticleRequest) (*dto.ArticleResponse, *response.BusinessError) {
	art, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.InternalError("获取文章失败", err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.ValidationError("标题不能为空")
		}
		art.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, response.ValidationError("内容不能为空")
		}
		art.Content = *req.Content
		art.Excerpt = makeExcerpt(*req.Content)
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, response.ValidationError("无效的文章状态")
		}
		art.Status = *req.Status
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.articleRepo.WithTx(tx).Save(art); err != nil {
			return err
		}
		if req.Tags == nil {
			return nil
		}
		// 传入 tags 时整体替换标签关联
		if err := s.tagRepo.WithTx(tx).RemoveArticleTags(art.ID); err != nil {
			return err
		}
		return s.attachTags(tx, art.ID, *req.Tags)
	})
	if err != nil {
		return nil, response.InternalError("更新文章失败", err)
	}

	resp := s.toResponse(art)
	return &resp, nil
}

// DeleteArticle 删除文章并级联清理标签关联与点赞记录
func (s *ArticleService) DeleteArticle(id uint) *response.BusinessError {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("文章不存在")
		}
		return response.InternalError("获取文章失败", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tagRepo.WithTx(tx).RemoveArticleTags(id); err != nil {
			return err
		}
		if err := s.likeRepo.WithTx(tx).RemoveByArticle(id); err != nil {
			return err
		}
		return tx.Delete(&article.Article{}, id).Error
	})
	if err != nil {
		return response.InternalError("删除文章失败", err)
	}
	return nil
}

// ListHotArticles 热门文章：阅读量降序，点赞数平局处理
func (s *ArticleService) ListHotArticles(limit int) ([]dto.ArticleResponse, *response.BusinessError) {
	articles, err := s.articleRepo.ListHot(limit)
	if err != nil {
		return nil, response.InternalError("获取热门文章失败", err)
	}
	return s.toResponseList(articles), nil
}

// ListUserArticles 用户自己发布的文章分页列表
func (s *ArticleService) ListUserArticles(userID uint, page, perPage int) (*dto.ArticleListResponse, *response.BusinessError) {
	offset := (page - 1) * perPage

	articles, total, err := s.articleRepo.ListByAuthor(userID, offset, perPage)
	if err != nil {
		return nil, response.InternalError("获取用户文章失败", err)
	}

	return &dto.ArticleListResponse{
		Articles:    s.toResponseList(articles),
		Total:       total,
		Pages:       dto.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

// ListUserLikedArticles 用户点赞的文章分页列表
// total/pages 按原始点赞记录统计，列表则过滤掉已删除或未发布的文章，
// 两者可能不一致，前端依赖这一对外行为
func (s *ArticleService) ListUserLikedArticles(userID uint, page, perPage int) (*dto.ArticleListResponse, *response.BusinessError) {
	offset := (page - 1) * perPage

	likes, total, err := s.likeRepo.ListByUser(userID, offset, perPage)
	if err != nil {
		return nil, response.InternalError("获取点赞记录失败", err)
	}

	items := make([]dto.ArticleResponse, 0, len(likes))
	for _, like := range likes {
		art, err := s.articleRepo.GetByID(like.ArticleID)
		if err != nil {
			continue
		}
		if art.Status != article.StatusPublished {
			continue
		}
		items = append(items, s.toResponse(art))
	}

	return &dto.ArticleListResponse{
		Articles:    items,
		Total:       total,
		Pages:       dto.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

// ToggleLike 点赞状态切换
// 已点赞则取消并扣减计数，未点赞则新增并累加计数；
// 点赞记录与计数更新在同一事务内提交，保证 likes_count 始终等于点赞行数。
// 并发下重复插入被唯一约束拒绝时，视为竞争失败、已处于点赞状态。
func (s *ArticleService) ToggleLike(articleID, userID uint) (*dto.LikeToggleResponse, *response.BusinessError) {
	if userID == 0 {
		return nil, response.ValidationError("用户ID不能为空")
	}

	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.InternalError("获取文章失败", err)
	}

	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		likeRepo := s.likeRepo.WithTx(tx)
		articleRepo := s.articleRepo.WithTx(tx)

		existing, err := likeRepo.Get(userID, articleID)
		if err == nil {
			// 取消点赞
			if err := likeRepo.Delete(existing); err != nil {
				return err
			}
			if err := articleRepo.DecrementLikes(articleID); err != nil {
				return err
			}
			liked = false
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 添加点赞
		if err := likeRepo.Create(&article.Like{
			UserID:    userID,
			ArticleID: articleID,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := articleRepo.IncrementLikes(articleID); err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发切换竞争失败：记录已存在，当前即点赞状态
			liked = true
		} else {
			return nil, response.InternalError("点赞操作失败", err)
		}
	}

	art, getErr := s.articleRepo.GetByID(articleID)
	if getErr != nil {
		return nil, response.InternalError("获取文章失败", getErr)
	}

	message := "点赞成功"
	if !liked {
		message = "取消点赞成功"
	}
	return &dto.LikeToggleResponse{
		Message:    message,
		LikesCount: art.LikesCount,
		IsLiked:    liked,
	}, nil
}

// CheckLikeStatus 查询用户是否已点赞文章，纯读操作
func (s *ArticleService) CheckLikeStatus(articleID, userID uint) (*dto.LikeStatusResponse, *response.BusinessError) {
	if userID == 0 {
		return nil, response.ValidationError("用户ID不能为空")
	}

	exists, err := s.likeRepo.Exists(userID, articleID)
	if err != nil {
		return nil, response.InternalError("查询点赞状态失败", err)
	}
	return &dto.LikeStatusResponse{IsLiked: exists}, nil
}
