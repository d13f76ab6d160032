package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/db"
	"github.com/ecan/gradtrack/internal/pkg/filestorage"
)

type mockUserRepo struct {
	mock.Mock
}

var _ repositories.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, userID int64, name, email string) error {
	args := m.Called(ctx, userID, name, email)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockTokenRepo struct {
	mock.Mock
}

var _ repositories.TokenRepository = (*mockTokenRepo)(nil)

func (m *mockTokenRepo) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	args := m.Called(ctx, token, userID, expiryDate)
	return args.Error(0)
}

func (m *mockTokenRepo) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Get(1).(time.Time), args.Bool(2), args.Error(3)
}

func (m *mockTokenRepo) RevokeToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockTokenRepo) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProgramRepo struct {
	mock.Mock
}

var _ repositories.ProgramRepository = (*mockProgramRepo)(nil)

func (m *mockProgramRepo) WithTx(tx pgx.Tx) repositories.ProgramRepository {
	m.Called(tx)
	return m
}

func (m *mockProgramRepo) Create(ctx context.Context, program *models.Program) (int64, error) {
	args := m.Called(ctx, program)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProgramRepo) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *mockProgramRepo) GetAllByOwner(ctx context.Context, userID int64, params repositories.ProgramListParams) ([]*models.Program, dto.PaginationInfo, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(dto.PaginationInfo), args.Error(2)
	}
	return args.Get(0).([]*models.Program), args.Get(1).(dto.PaginationInfo), args.Error(2)
}

func (m *mockProgramRepo) Update(ctx context.Context, program *models.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockProgramRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDocumentRepo struct {
	mock.Mock
}

var _ repositories.DocumentRepository = (*mockDocumentRepo)(nil)

func (m *mockDocumentRepo) WithTx(tx pgx.Tx) repositories.DocumentRepository {
	m.Called(tx)
	return m
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *models.Document) (int64, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentRepo) GetAllByOwner(ctx context.Context, userID int64, params repositories.DocumentListParams) ([]*models.Document, dto.PaginationInfo, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(dto.PaginationInfo), args.Error(2)
	}
	return args.Get(0).([]*models.Document), args.Get(1).(dto.PaginationInfo), args.Error(2)
}

func (m *mockDocumentRepo) Update(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLinkRepo struct {
	mock.Mock
}

var _ repositories.ProgramDocumentRepository = (*mockLinkRepo)(nil)

func (m *mockLinkRepo) WithTx(tx pgx.Tx) repositories.ProgramDocumentRepository {
	m.Called(tx)
	return m
}

func (m *mockLinkRepo) Create(ctx context.Context, link *models.ProgramDocument) (int64, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLinkRepo) GetByID(ctx context.Context, id int64) (*models.ProgramDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgramDocument), args.Error(1)
}

func (m *mockLinkRepo) GetByIDWithOwner(ctx context.Context, id int64) (*models.ProgramDocument, int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*models.ProgramDocument), args.Get(1).(int64), args.Error(2)
}

func (m *mockLinkRepo) GetAllByProgram(ctx context.Context, programID int64) ([]*models.ProgramDocument, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProgramDocument), args.Error(1)
}

func (m *mockLinkRepo) ExistsForPair(ctx context.Context, programID, documentID int64) (bool, error) {
	args := m.Called(ctx, programID, documentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLinkRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFileStorage struct {
	mock.Mock
}

var _ filestorage.FileStorage = (*mockFileStorage)(nil)

func (m *mockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}

func (m *mockFileStorage) GetFullPath(filePath string) string {
	args := m.Called(filePath)
	return args.String(0)
}

// fakeTxManager runs the transactional function directly, without a real
// database connection. The nil transaction is fine because the repository
// mocks ignore it.
type fakeTxManager struct{}

var _ TxManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}
