// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "qr_dine/internal/api/auth/dto"
	models "qr_dine/internal/api/auth/models"
	basesvc "qr_dine/internal/api/base/service"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email + mật khẩu.
// Email là duy nhất (unique sparse index), mật khẩu được hash bằng bcrypt trước khi lưu.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa để trả lỗi rõ ràng thay vì lỗi duplicate key
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Email đã được sử dụng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		logrus.WithError(err).Error("Register: Lỗi hash mật khẩu")
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Tokens:   []models.Token{},
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Login xác thực email + mật khẩu và phát hành JWT token theo hwid.
// Mỗi thiết bị (hwid) giữ một token riêng; field token luôn giữ token mới nhất.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	var idTokenExist int = -1
	for i, _token := range user.Tokens {
		if _token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// SetSubscription gắn subscription id vào user sau khi thanh toán gói thành công.
func (s *UserService) SetSubscription(ctx context.Context, userID primitive.ObjectID, subscriptionID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"subscriptionId": subscriptionID,
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}
