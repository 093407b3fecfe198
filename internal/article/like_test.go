package article

import (
	"net/http"
	"testing"

	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/internal/testutils"
)

// TestToggleLike 测试点赞切换与计数一致性
func TestToggleLike(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewArticleService(db)
	author := testutils.CreateTestUser(db)
	liker := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	likeRows := func() int64 {
		var n int64
		db.Model(&article.Like{}).Where("article_id = ?", art.ID).Count(&n)
		return n
	}
	likesCount := func() uint {
		var a article.Article
		if err := db.First(&a, art.ID).Error; err != nil {
			t.Fatalf("reload article: %v", err)
		}
		return a.LikesCount
	}

	// 第一次切换：点赞
	resp, bizErr := service.ToggleLike(art.ID, liker.ID)
	if bizErr != nil {
		t.Fatalf("ToggleLike() error: %v", bizErr)
	}
	if !resp.IsLiked {
		t.Error("is_liked = false, want true")
	}
	if resp.Message != "点赞成功" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.LikesCount != 1 {
		t.Errorf("likes_count = %d, want 1", resp.LikesCount)
	}
	if likeRows() != 1 || likesCount() != 1 {
		t.Errorf("rows = %d, counter = %d, want both 1", likeRows(), likesCount())
	}

	// 第二次切换：取消点赞，回到初始状态
	resp, bizErr = service.ToggleLike(art.ID, liker.ID)
	if bizErr != nil {
		t.Fatalf("ToggleLike() error: %v", bizErr)
	}
	if resp.IsLiked {
		t.Error("is_liked = true, want false")
	}
	if resp.Message != "取消点赞成功" {
		t.Errorf("message = %q", resp.Message)
	}
	if likeRows() != 0 || likesCount() != 0 {
		t.Errorf("rows = %d, counter = %d, want both 0", likeRows(), likesCount())
	}
}

// TestToggleLike_Validation 测试点赞入参校验
func TestToggleLike_Validation(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewArticleService(db)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	if _, bizErr := service.ToggleLike(art.ID, 0); bizErr == nil || bizErr.Status != http.StatusBadRequest {
		t.Errorf("missing user status = %v, want 400", bizErr)
	}
	if _, bizErr := service.ToggleLike(999999, author.ID); bizErr == nil || bizErr.Status != http.StatusNotFound {
		t.Errorf("missing article status = %v, want 404", bizErr)
	}
}

// TestToggleLike_MultipleUsers 多个用户点赞同一篇文章，计数等于行数
func TestToggleLike_MultipleUsers(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewArticleService(db)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	users := make([]uint, 3)
	for i := range users {
		users[i] = testutils.CreateTestUser(db).ID
		if _, bizErr := service.ToggleLike(art.ID, users[i]); bizErr != nil {
			t.Fatalf("ToggleLike() error: %v", bizErr)
		}
	}

	// 其中一人取消
	if _, bizErr := service.ToggleLike(art.ID, users[1]); bizErr != nil {
		t.Fatalf("ToggleLike() error: %v", bizErr)
	}

	var rows int64
	db.Model(&article.Like{}).Where("article_id = ?", art.ID).Count(&rows)

	var reloaded article.Article
	if err := db.First(&reloaded, art.ID).Error; err != nil {
		t.Fatalf("reload article: %v", err)
	}
	if rows != 2 || reloaded.LikesCount != 2 {
		t.Errorf("rows = %d, counter = %d, want both 2", rows, reloaded.LikesCount)
	}

	status, bizErr := service.CheckLikeStatus(art.ID, users[0])
	if bizErr != nil {
		t.Fatalf("CheckLikeStatus() error: %v", bizErr)
	}
	if !status.IsLiked {
		t.Error("users[0] is_liked = false, want true")
	}

	status, bizErr = service.CheckLikeStatus(art.ID, users[1])
	if bizErr != nil {
		t.Fatalf("CheckLikeStatus() error: %v", bizErr)
	}
	if status.IsLiked {
		t.Error("users[1] is_liked = true, want false")
	}
}

// TestDecrementLikes_FloorsAtZero 计数扣减不会越过零
func TestDecrementLikes_FloorsAtZero(t *testing.T) {
	db := testutils.SetupTestDB(t)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	repo := NewArticleRepository(db)
	if err := repo.DecrementLikes(art.ID); err != nil {
		t.Fatalf("DecrementLikes() error: %v", err)
	}

	var reloaded article.Article
	if err := db.First(&reloaded, art.ID).Error; err != nil {
		t.Fatalf("reload article: %v", err)
	}
	if reloaded.LikesCount != 0 {
		t.Errorf("likes_count = %d, want 0", reloaded.LikesCount)
	}
}

// TestListUserLikedArticles 测试点赞列表：总数按点赞记录统计，列表过滤未发布文章
func TestListUserLikedArticles(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewArticleService(db)
	author := testutils.CreateTestUser(db)
	liker := testutils.CreateTestUser(db)

	published1 := testutils.CreateTestArticle(db, author.ID)
	published2 := testutils.CreateTestArticle(db, author.ID)
	draft := testutils.CreateTestArticle(db, author.ID, testutils.WithStatus(article.StatusDraft))

	for _, id := range []uint{published1.ID, published2.ID, draft.ID} {
		if _, bizErr := service.ToggleLike(id, liker.ID); bizErr != nil {
			t.Fatalf("ToggleLike() error: %v", bizErr)
		}
	}

	resp, bizErr := service.ListUserLikedArticles(liker.ID, 1, 10)
	if bizErr != nil {
		t.Fatalf("ListUserLikedArticles() error: %v", bizErr)
	}

	// total 计入草稿的点赞记录，列表只展示已发布文章
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
	if len(resp.Articles) != 2 {
		t.Errorf("rows = %d, want 2", len(resp.Articles))
	}
	for _, item := range resp.Articles {
		if item.ID == draft.ID {
			t.Error("draft article leaked into liked list")
		}
	}
}
