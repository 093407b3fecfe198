package user

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taoyize/vue-flask-blog/internal/dto"
	articleModel "github.com/taoyize/vue-flask-blog/internal/model/article"
	userModel "github.com/taoyize/vue-flask-blog/internal/model/user"
	"github.com/taoyize/vue-flask-blog/internal/testutils"
)

func strPtr(s string) *string {
	return &s
}

func TestRegister(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	existing := testutils.CreateTestUser(db, testutils.WithUsername("taken_name"), testutils.WithEmail("taken@example.com"))
	_ = existing

	tests := []struct {
		name       string
		req        dto.RegisterRequest
		wantErr    bool
		wantStatus int
	}{
		{
			name: "成功注册",
			req:  dto.RegisterRequest{Username: "alice", Password: "secret", Email: "alice@example.com", Phone: "13800138000"},
		},
		{
			name: "仅用户名和密码",
			req:  dto.RegisterRequest{Username: "bob", Password: "secret"},
		},
		{
			name:       "缺少用户名",
			req:        dto.RegisterRequest{Password: "secret"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "缺少密码",
			req:        dto.RegisterRequest{Username: "carol"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "用户名已存在",
			req:        dto.RegisterRequest{Username: "taken_name", Password: "secret"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "邮箱已存在",
			req:        dto.RegisterRequest{Username: "dave", Password: "secret", Email: "taken@example.com"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "邮箱格式错误",
			req:        dto.RegisterRequest{Username: "erin", Password: "secret", Email: "not-an-email"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "短域名邮箱合法",
			req:  dto.RegisterRequest{Username: "frank", Password: "secret", Email: "a@b.co"},
		},
		{
			name:       "手机号不以13-19开头",
			req:        dto.RegisterRequest{Username: "grace", Password: "secret", Phone: "12345678901"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.Register(tt.req)

			if tt.wantErr {
				require.NotNil(t, bizErr)
				assert.Equal(t, tt.wantStatus, bizErr.Status)

				// 失败的注册不应产生记录
				if tt.req.Username != "" && tt.req.Username != "taken_name" {
					var count int64
					db.Model(&userModel.User{}).Where("username = ?", tt.req.Username).Count(&count)
					assert.Zero(t, count)
				}
				return
			}

			require.Nil(t, bizErr)
			require.NotNil(t, resp)
			assert.Equal(t, tt.req.Username, resp.Username)
			assert.Equal(t, 0, resp.Authority)

			// 密码散列入库且不等于明文
			var u userModel.User
			require.NoError(t, db.Where("username = ?", tt.req.Username).First(&u).Error)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, tt.req.Password, u.PasswordHash)
		})
	}
}

func TestRegister_DuplicateUsernameKeepsRowCount(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	testutils.CreateTestUser(db, testutils.WithUsername("only_one"))

	var before int64
	db.Model(&userModel.User{}).Count(&before)

	_, bizErr := service.Register(dto.RegisterRequest{Username: "only_one", Password: "secret"})
	require.NotNil(t, bizErr)

	var after int64
	db.Model(&userModel.User{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestLogin(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	// 通过注册接口创建，保证密码散列来自同一套逻辑
	_, bizErr := service.Register(dto.RegisterRequest{
		Username: "login_user",
		Password: "my-password",
		Email:    "login_user@example.com",
	})
	require.Nil(t, bizErr)

	tests := []struct {
		name       string
		identifier string
		password   string
		wantErr    bool
		wantStatus int
	}{
		{name: "用户名登录", identifier: "login_user", password: "my-password"},
		{name: "邮箱登录", identifier: "login_user@example.com", password: "my-password"},
		{name: "密码错误", identifier: "login_user", password: "wrong", wantErr: true, wantStatus: http.StatusUnauthorized},
		{name: "用户不存在", identifier: "nobody", password: "my-password", wantErr: true, wantStatus: http.StatusUnauthorized},
		{name: "空参数", identifier: "", password: "", wantErr: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.Login(dto.LoginRequest{Username: tt.identifier, Password: tt.password})

			if tt.wantErr {
				require.NotNil(t, bizErr)
				assert.Equal(t, tt.wantStatus, bizErr.Status)
				return
			}

			require.Nil(t, bizErr)
			assert.Equal(t, "login_user", resp.Username)
		})
	}
}

func TestLogin_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	_, bizErr := service.Register(dto.RegisterRequest{Username: "enum_check", Password: "secret"})
	require.Nil(t, bizErr)

	_, errUnknown := service.Login(dto.LoginRequest{Username: "no_such_user", Password: "secret"})
	_, errWrongPw := service.Login(dto.LoginRequest{Username: "enum_check", Password: "bad"})

	require.NotNil(t, errUnknown)
	require.NotNil(t, errWrongPw)
	// 防止账号枚举：两种失败不可区分
	assert.Equal(t, errUnknown.Status, errWrongPw.Status)
	assert.Equal(t, errUnknown.Msg, errWrongPw.Msg)
}

func TestUpdateUser(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	u := testutils.CreateTestUser(db, testutils.WithUsername("update_me"), testutils.WithEmail("update_me@example.com"))
	other := testutils.CreateTestUser(db, testutils.WithUsername("other_user"), testutils.WithEmail("other@example.com"))
	_ = other

	t.Run("未提供的字段不改动", func(t *testing.T) {
		resp, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{})
		require.Nil(t, bizErr)
		assert.Equal(t, "update_me", resp.Username)
		require.NotNil(t, resp.Email)
		assert.Equal(t, "update_me@example.com", *resp.Email)
	})

	t.Run("改名成功", func(t *testing.T) {
		resp, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Username: strPtr("renamed")})
		require.Nil(t, bizErr)
		assert.Equal(t, "renamed", resp.Username)
	})

	t.Run("改为已占用的用户名", func(t *testing.T) {
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Username: strPtr("other_user")})
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusBadRequest, bizErr.Status)
	})

	t.Run("用户名不能清空", func(t *testing.T) {
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Username: strPtr("")})
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusBadRequest, bizErr.Status)
	})

	t.Run("空串清空邮箱", func(t *testing.T) {
		resp, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Email: strPtr("")})
		require.Nil(t, bizErr)
		assert.Nil(t, resp.Email)
	})

	t.Run("改为已占用的邮箱", func(t *testing.T) {
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Email: strPtr("other@example.com")})
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusBadRequest, bizErr.Status)
	})

	t.Run("手机号格式校验", func(t *testing.T) {
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Phone: strPtr("12345678901")})
		require.NotNil(t, bizErr)

		resp, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Phone: strPtr("13800138000")})
		require.Nil(t, bizErr)
		assert.Equal(t, "13800138000", resp.Phone)
	})

	t.Run("头像前缀校验", func(t *testing.T) {
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Avatar: strPtr("ftp://bad.example.com/a.png")})
		require.NotNil(t, bizErr)

		resp, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Avatar: strPtr("https://cdn.example.com/a.png")})
		require.Nil(t, bizErr)
		assert.Equal(t, "https://cdn.example.com/a.png", resp.Avatar)
	})

	t.Run("头像长度上限", func(t *testing.T) {
		long := "https://cdn.example.com/"
		for len(long) <= 255 {
			long += "x"
		}
		_, bizErr := service.UpdateUser(u.ID, dto.UpdateUserRequest{Avatar: &long})
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusBadRequest, bizErr.Status)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, bizErr := service.UpdateUser(999999, dto.UpdateUserRequest{})
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusNotFound, bizErr.Status)
	})
}

func TestDeleteUser(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	t.Run("用户不存在", func(t *testing.T) {
		bizErr := service.DeleteUser(999999)
		require.NotNil(t, bizErr)
		assert.Equal(t, http.StatusNotFound, bizErr.Status)
	})

	t.Run("级联清理", func(t *testing.T) {
		author := testutils.CreateTestUser(db)
		liker := testutils.CreateTestUser(db)

		// liker 点赞 author 的文章
		art := testutils.CreateTestArticle(db, author.ID)
		require.NoError(t, db.Create(&articleModel.Like{UserID: liker.ID, ArticleID: art.ID}).Error)
		require.NoError(t, db.Model(&articleModel.Article{}).Where("id = ?", art.ID).
			Update("likes_count", 1).Error)

		// liker 自己也有一篇带标签的文章
		likerArt := testutils.CreateTestArticle(db, liker.ID)
		tag := articleModel.Tag{Name: "cascade_tag_" + likerArt.Title}
		require.NoError(t, db.Create(&tag).Error)
		require.NoError(t, db.Create(&articleModel.ArticleTag{ArticleID: likerArt.ID, TagID: tag.ID}).Error)

		require.Nil(t, service.DeleteUser(liker.ID))

		// 点赞记录删除且计数回落
		var likeCount int64
		db.Model(&articleModel.Like{}).Where("user_id = ?", liker.ID).Count(&likeCount)
		assert.Zero(t, likeCount)

		var reloaded articleModel.Article
		require.NoError(t, db.First(&reloaded, art.ID).Error)
		assert.Zero(t, reloaded.LikesCount)

		// liker 的文章及其标签关联删除
		var artCount int64
		db.Model(&articleModel.Article{}).Where("author_id = ?", liker.ID).Count(&artCount)
		assert.Zero(t, artCount)

		var assocCount int64
		db.Model(&articleModel.ArticleTag{}).Where("article_id = ?", likerArt.ID).Count(&assocCount)
		assert.Zero(t, assocCount)

		// 用户本身删除
		var userCount int64
		db.Model(&userModel.User{}).Where("id = ?", liker.ID).Count(&userCount)
		assert.Zero(t, userCount)

		// 旁观者不受影响
		var authorCount int64
		db.Model(&userModel.User{}).Where("id = ?", author.ID).Count(&authorCount)
		assert.Equal(t, int64(1), authorCount)
	})
}
