package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"manufacturer-api/internal/auth"
	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
	"manufacturer-api/internal/service"
)

// ---- function-field mocks ----

type mockUserRepo struct {
	FindAllFunc     func(ctx context.Context) ([]*model.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	UpsertFunc      func(ctx context.Context, email string, user *model.User) (*dto.UpdateResult, error)
	SetRoleFunc     func(ctx context.Context, email, role string) (*dto.UpdateResult, error)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*model.User{}, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Upsert(ctx context.Context, email string, user *model.User) (*dto.UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, email, user)
	}
	return &dto.UpdateResult{UpsertedID: primitive.NewObjectID().Hex()}, nil
}

func (m *mockUserRepo) SetRole(ctx context.Context, email, role string) (*dto.UpdateResult, error) {
	if m.SetRoleFunc != nil {
		return m.SetRoleFunc(ctx, email, role)
	}
	return &dto.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type mockPartService struct {
	ListFunc           func(ctx context.Context) ([]*model.Part, error)
	GetFunc            func(ctx context.Context, id primitive.ObjectID) (*model.Part, error)
	CreateFunc         func(ctx context.Context, part *model.Part) (*dto.InsertResult, error)
	UpdateQuantityFunc func(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error)
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

func (m *mockPartService) List(ctx context.Context) ([]*model.Part, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*model.Part{}, nil
}

func (m *mockPartService) Get(ctx context.Context, id primitive.ObjectID) (*model.Part, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPartService) Create(ctx context.Context, part *model.Part) (*dto.InsertResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, part)
	}
	return &dto.InsertResult{}, nil
}

func (m *mockPartService) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error) {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, id, quantity)
	}
	return &dto.UpdateResult{}, nil
}

func (m *mockPartService) Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &dto.DeleteResult{}, nil
}

type mockReviewService struct {
	ListFunc   func(ctx context.Context) ([]*model.Review, error)
	CreateFunc func(ctx context.Context, review *model.Review) (*dto.InsertResult, error)
}

func (m *mockReviewService) List(ctx context.Context) ([]*model.Review, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*model.Review{}, nil
}

func (m *mockReviewService) Create(ctx context.Context, review *model.Review) (*dto.InsertResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return &dto.InsertResult{}, nil
}

type mockOrderService struct {
	GetFunc           func(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByEmailFunc   func(ctx context.Context, email string) ([]*model.Order, error)
	CreateFunc        func(ctx context.Context, order *model.Order) (*dto.InsertResult, error)
	DeleteByEmailFunc func(ctx context.Context, email string) (*dto.DeleteResult, error)
}

func (m *mockOrderService) Get(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockOrderService) ListByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email)
	}
	return []*model.Order{}, nil
}

func (m *mockOrderService) Create(ctx context.Context, order *model.Order) (*dto.InsertResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return &dto.InsertResult{}, nil
}

func (m *mockOrderService) DeleteByEmail(ctx context.Context, email string) (*dto.DeleteResult, error) {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	return &dto.DeleteResult{}, nil
}

type mockProfileService struct {
	GetFunc    func(ctx context.Context, email string) (*model.Profile, error)
	CreateFunc func(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error)
	UpsertFunc func(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error)
}

func (m *mockProfileService) Get(ctx context.Context, email string) (*model.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProfileService) Create(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return &dto.InsertResult{}, nil
}

func (m *mockProfileService) Upsert(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, profile)
	}
	return &dto.UpdateResult{}, nil
}

type mockPaymentService struct {
	CreateIntentFunc        func(ctx context.Context, price float64) (string, error)
	ConfirmOrderPaymentFunc func(ctx context.Context, orderID primitive.ObjectID, req *dto.ConfirmPaymentRequest) (*dto.UpdateResult, error)
}

func (m *mockPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, price)
	}
	return "pi_secret", nil
}

func (m *mockPaymentService) ConfirmOrderPayment(ctx context.Context, orderID primitive.ObjectID, req *dto.ConfirmPaymentRequest) (*dto.UpdateResult, error) {
	if m.ConfirmOrderPaymentFunc != nil {
		return m.ConfirmOrderPaymentFunc(ctx, orderID, req)
	}
	return &dto.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// ---- harness ----

type testEnv struct {
	server   *Server
	tokens   *auth.TokenManager
	users    *mockUserRepo
	parts    *mockPartService
	reviews  *mockReviewService
	orders   *mockOrderService
	profiles *mockProfileService
	payments *mockPaymentService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		tokens:   auth.NewTokenManager("test-secret", 24*time.Hour),
		users:    &mockUserRepo{},
		parts:    &mockPartService{},
		reviews:  &mockReviewService{},
		orders:   &mockOrderService{},
		profiles: &mockProfileService{},
		payments: &mockPaymentService{},
	}

	env.server = NewServer(
		env.tokens,
		auth.NewRoleAuthorizer(env.users),
		env.parts,
		env.reviews,
		env.orders,
		service.NewUserService(env.users, env.tokens),
		env.profiles,
		env.payments,
	)

	return env
}

func (env *testEnv) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.server.echo.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) mustIssue(t *testing.T, email string) string {
	t.Helper()
	token, err := env.tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// ---- tests ----

func TestGatedRoutesRejectMissingAuthHeader(t *testing.T) {
	env := newTestEnv()
	orderID := primitive.NewObjectID().Hex()

	gated := []struct {
		method, target string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/orders?email=a@b.com"},
		{http.MethodPatch, "/orders/" + orderID},
		{http.MethodPut, "/user/admin/a@b.com"},
		{http.MethodPost, "/create-payment-intent"},
	}

	for _, route := range gated {
		rec := env.do(t, route.method, route.target, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without header: status = %d, want 401", route.method, route.target, rec.Code)
		}
	}
}

func TestGatedRoutesRejectBadTokens(t *testing.T) {
	env := newTestEnv()

	wrongSigner := auth.NewTokenManager("other-secret", 24*time.Hour)
	wrongToken, _ := wrongSigner.Issue("a@b.com")

	expiredSigner := auth.NewTokenManager("test-secret", -time.Hour)
	expiredToken, _ := expiredSigner.Issue("a@b.com")

	for name, token := range map[string]string{"wrong signature": wrongToken, "expired": expiredToken} {
		rec := env.do(t, http.MethodGet, "/users", "", token)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s token: status = %d, want 403", name, rec.Code)
		}
	}
}

func TestUpsertUserReturnsTokenForPathEmail(t *testing.T) {
	env := newTestEnv()
	email := uuid.NewString() + "@example.com"

	rec := env.do(t, http.MethodPut, "/user/"+email, `{"name":"Alice"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.UpsertUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := env.tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("parse returned token: %v", err)
	}
	if claims.Email != email {
		t.Errorf("token email = %q, want %q", claims.Email, email)
	}
}

func TestPromoteDeniedForNonAdmin(t *testing.T) {
	env := newTestEnv()

	roles := map[string]string{"buyer@example.com": ""}
	env.users.FindByEmailFunc = func(ctx context.Context, email string) (*model.User, error) {
		role, ok := roles[email]
		if !ok {
			return nil, repository.ErrNotFound
		}
		return &model.User{Email: email, Role: role}, nil
	}
	env.users.SetRoleFunc = func(ctx context.Context, email, role string) (*dto.UpdateResult, error) {
		t.Errorf("role of %s must not change on a denied request", email)
		return nil, nil
	}

	token := env.mustIssue(t, "buyer@example.com")
	rec := env.do(t, http.MethodPut, "/user/admin/target@example.com", "", token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestPromoteDeniedForUnknownCaller(t *testing.T) {
	env := newTestEnv()

	// Valid token, but no user document behind it.
	token := env.mustIssue(t, "ghost@example.com")
	rec := env.do(t, http.MethodPut, "/user/admin/target@example.com", "", token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestPromoteAsAdminSetsRole(t *testing.T) {
	env := newTestEnv()

	roles := map[string]string{"root@example.com": auth.RoleAdmin}
	env.users.FindByEmailFunc = func(ctx context.Context, email string) (*model.User, error) {
		role, ok := roles[email]
		if !ok {
			return nil, repository.ErrNotFound
		}
		return &model.User{Email: email, Role: role}, nil
	}
	env.users.SetRoleFunc = func(ctx context.Context, email, role string) (*dto.UpdateResult, error) {
		roles[email] = role
		return &dto.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	token := env.mustIssue(t, "root@example.com")
	rec := env.do(t, http.MethodPut, "/user/admin/target@example.com", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if roles["target@example.com"] != auth.RoleAdmin {
		t.Errorf("target role = %q, want admin", roles["target@example.com"])
	}

	// Promotion is observable through the public admin check.
	rec = env.do(t, http.MethodGet, "/admin/target@example.com", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin check status = %d", rec.Code)
	}
	var status dto.AdminStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode admin status: %v", err)
	}
	if !status.Admin {
		t.Error("expected admin=true after promotion")
	}
}

func TestOrdersByEmailEnforcesOwnership(t *testing.T) {
	env := newTestEnv()

	env.orders.ListByEmailFunc = func(ctx context.Context, email string) ([]*model.Order, error) {
		return []*model.Order{{Email: email, PartID: primitive.NewObjectID().Hex(), Quantity: 2}}, nil
	}

	token := env.mustIssue(t, "x@example.com")

	rec := env.do(t, http.MethodGet, "/orders?email=x@example.com", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("own orders: status = %d", rec.Code)
	}
	var orders []*model.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	for _, o := range orders {
		if o.Email != "x@example.com" {
			t.Errorf("got order for %q", o.Email)
		}
	}

	rec = env.do(t, http.MethodGet, "/orders?email=y@example.com", "", token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign orders: status = %d, want 403", rec.Code)
	}
}

func TestConfirmOrderPaymentRoute(t *testing.T) {
	env := newTestEnv()
	orderID := primitive.NewObjectID()

	var confirmed int
	env.payments.ConfirmOrderPaymentFunc = func(ctx context.Context, id primitive.ObjectID, req *dto.ConfirmPaymentRequest) (*dto.UpdateResult, error) {
		confirmed++
		if id != orderID {
			t.Errorf("confirmed order %s, want %s", id.Hex(), orderID.Hex())
		}
		if req.TransactionID != "txn_abc" {
			t.Errorf("transaction id = %q", req.TransactionID)
		}
		return &dto.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	token := env.mustIssue(t, "buyer@example.com")
	rec := env.do(t, http.MethodPatch, "/orders/"+orderID.Hex(), `{"transactionId":"txn_abc","amount":12.5}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if confirmed != 1 {
		t.Errorf("payment confirmed %d times, want 1", confirmed)
	}
}

func TestPartRoundTrip(t *testing.T) {
	env := newTestEnv()

	parts := map[primitive.ObjectID]*model.Part{}
	env.parts.CreateFunc = func(ctx context.Context, part *model.Part) (*dto.InsertResult, error) {
		part.ID = primitive.NewObjectID()
		parts[part.ID] = part
		return &dto.InsertResult{InsertedID: part.ID.Hex()}, nil
	}
	env.parts.GetFunc = func(ctx context.Context, id primitive.ObjectID) (*model.Part, error) {
		part, ok := parts[id]
		if !ok {
			return nil, repository.ErrNotFound
		}
		return part, nil
	}

	rec := env.do(t, http.MethodPost, "/parts", `{"name":"Brake Disc","price":49.5,"quantity":120,"supplierName":"Acme"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created dto.InsertResult
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode insert result: %v", err)
	}

	rec = env.do(t, http.MethodGet, "/parts/"+created.InsertedID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}

	var got model.Part
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode part: %v", err)
	}
	if got.Name != "Brake Disc" || got.Price != 49.5 || got.Quantity != 120 || got.SupplierName != "Acme" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestDeleteMissingPartReportsZero(t *testing.T) {
	env := newTestEnv()

	env.parts.DeleteFunc = func(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
		return &dto.DeleteResult{DeletedCount: 0}, nil
	}

	rec := env.do(t, http.MethodDelete, "/parts/"+primitive.NewObjectID().Hex(), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result dto.DeleteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode delete result: %v", err)
	}
	if result.DeletedCount != 0 {
		t.Errorf("deletedCount = %d, want 0", result.DeletedCount)
	}
}

func TestPartQuantityUpdateRoute(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()

	var gotQuantity int32
	env.parts.UpdateQuantityFunc = func(ctx context.Context, partID primitive.ObjectID, quantity int32) (*dto.UpdateResult, error) {
		if partID != id {
			t.Errorf("updated part %s, want %s", partID.Hex(), id.Hex())
		}
		gotQuantity = quantity
		return &dto.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	rec := env.do(t, http.MethodPut, "/parts/"+id.Hex(), `{"quantity":75}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gotQuantity != 75 {
		t.Errorf("quantity = %d, want 75", gotQuantity)
	}
}

func TestCreatePaymentIntentRoute(t *testing.T) {
	env := newTestEnv()

	env.payments.CreateIntentFunc = func(ctx context.Context, price float64) (string, error) {
		if price != 19.99 {
			t.Errorf("price = %v", price)
		}
		return "pi_456_secret", nil
	}

	token := env.mustIssue(t, "buyer@example.com")
	rec := env.do(t, http.MethodPost, "/create-payment-intent", `{"price":19.99}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.CreatePaymentIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_456_secret" {
		t.Errorf("clientSecret = %q", resp.ClientSecret)
	}
}

func TestGetPartInvalidIDIsBadRequest(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/parts/not-an-object-id", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLiveness(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Manufacturer") {
		t.Errorf("unexpected liveness body %q", rec.Body.String())
	}
}
