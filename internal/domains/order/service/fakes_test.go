package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	cart "foodee-backend/internal/domains/cart/model"
	catalog "foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/infrastructure/events"
)

type fakeOrderRepo struct {
	nextID   int64
	orders   map[int64]*model.Order
	payments map[int64]model.PaymentMethod
	calls    []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*model.Order{}, payments: map[int64]model.PaymentMethod{}}
}

func cloneOrder(o *model.Order) *model.Order {
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp
}

func (r *fakeOrderRepo) Create(_ context.Context, o *model.Order) error {
	r.nextID++
	o.ID = r.nextID
	for i := range o.Items {
		o.Items[i].ID = int64(i + 1)
		o.Items[i].OrderID = o.ID
	}
	saved := cloneOrder(o)
	saved.PaymentMethod = ""
	r.orders[o.ID] = saved
	r.calls = append(r.calls, "create")
	return nil
}

func (r *fakeOrderRepo) CreatePayment(_ context.Context, p *model.Payment) error {
	r.payments[p.OrderID] = p.Method
	p.ID = p.OrderID
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	cp := cloneOrder(o)
	cp.PaymentMethod = r.payments[id]
	return cp, nil
}

func (r *fakeOrderRepo) list(pred func(*model.Order) bool) []model.Order {
	out := []model.Order{}
	for _, o := range r.orders {
		if pred(o) {
			cp := cloneOrder(o)
			cp.PaymentMethod = r.payments[o.ID]
			out = append(out, *cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	return r.list(func(o *model.Order) bool { return o.UserID == userID }), nil
}

func (r *fakeOrderRepo) ListAll(context.Context) ([]model.Order, error) {
	return r.list(func(*model.Order) bool { return true }), nil
}

func (r *fakeOrderRepo) get(id int64) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, s model.OrderStatus) error {
	o, err := r.get(id)
	if err != nil {
		return err
	}
	o.Status = s
	return nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(_ context.Context, id int64, s model.PaymentStatus) error {
	o, err := r.get(id)
	if err != nil {
		return err
	}
	o.PaymentStatus = s
	return nil
}

func (r *fakeOrderRepo) UpdateStatuses(_ context.Context, id int64, s model.OrderStatus, ps model.PaymentStatus) error {
	o, err := r.get(id)
	if err != nil {
		return err
	}
	o.Status, o.PaymentStatus = s, ps
	return nil
}

func (r *fakeOrderRepo) UpdateDeliveryDate(_ context.Context, id int64, d time.Time) error {
	o, err := r.get(id)
	if err != nil {
		return err
	}
	o.DeliveryDate = &d
	return nil
}

func (r *fakeOrderRepo) DeletePayment(_ context.Context, orderID int64) error {
	delete(r.payments, orderID)
	r.calls = append(r.calls, "delete-payment")
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, err := r.get(id); err != nil {
		return err
	}
	if _, ok := r.payments[id]; ok {
		return errors.New("payment still references order")
	}
	delete(r.orders, id)
	r.calls = append(r.calls, "delete-order")
	return nil
}

type releasesKey struct{}

// lockingTxManager nhả các khóa lấy trong fn khi fn kết thúc, giống khóa dòng của Postgres
type lockingTxManager struct{}

func (lockingTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(releasesKey{}).(*[]func()); ok {
		return fn(ctx)
	}
	var releases []func()
	defer func() {
		for _, release := range releases {
			release()
		}
	}()
	return fn(context.WithValue(ctx, releasesKey{}, &releases))
}

type fakeCarts struct {
	mu    sync.Mutex
	carts map[int64]*cart.Cart
	calls []string
}

func (f *fakeCarts) LockByUserID(ctx context.Context, _ int64) error {
	releases, ok := ctx.Value(releasesKey{}).(*[]func())
	if !ok {
		return errors.New("cart lock outside transaction")
	}
	f.mu.Lock()
	*releases = append(*releases, f.mu.Unlock)
	f.calls = append(f.calls, "lock")
	return nil
}

func (f *fakeCarts) FindByUserID(_ context.Context, userID int64) (*cart.Cart, error) {
	f.calls = append(f.calls, "find")
	c, ok := f.carts[userID]
	if !ok {
		return &cart.Cart{UserID: userID}, nil
	}
	cp := *c
	cp.Items = append([]cart.CartItem(nil), c.Items...)
	return &cp, nil
}

func (f *fakeCarts) ClearItems(_ context.Context, cartID int64) (int64, error) {
	f.calls = append(f.calls, "clear")
	for _, c := range f.carts {
		if c.ID == cartID {
			n := int64(len(c.Items))
			c.Items = nil
			return n, nil
		}
	}
	return 0, nil
}

type fakeProducts map[int64]*catalog.Product

func (f fakeProducts) FindByID(_ context.Context, id int64) (*catalog.Product, error) {
	p, ok := f[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeUsers map[int64]*user.User

func (f fakeUsers) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type recordingPublisher struct {
	events []events.OrderEvent
	err    error
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, e events.OrderEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
