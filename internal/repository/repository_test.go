package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// Тесты репозитория работают с реальной базой. Без TEST_DATABASE_URI
// они пропускаются, чтобы пакет собирался и тестировался без Postgres.
func setupRepo(t *testing.T) *PostgresRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	repo, err := NewPostgresRepository(dsn)
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	truncate := func() {
		_, err := repo.pool.Exec(context.Background(),
			`TRUNCATE rates, order_items, orders, carts, menu_items, categories, user_groups, users RESTART IDENTITY CASCADE`)
		if err != nil {
			t.Fatalf("truncate tables: %v", err)
		}
	}
	truncate()
	t.Cleanup(truncate)

	return repo
}

func seedUser(t *testing.T, r *PostgresRepository, username string, group model.Group, ready *bool) int64 {
	t.Helper()

	var id int64
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO users (username, ready_to_work) VALUES ($1, $2) RETURNING id`,
		username, ready,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}

	if _, err := r.AddUserToGroup(context.Background(), id, group); err != nil {
		t.Fatalf("seed group for %s: %v", username, err)
	}

	return id
}

func seedMenuItem(t *testing.T, r *PostgresRepository, title string, priceCents int64, featured bool) int64 {
	t.Helper()
	ctx := context.Background()

	category, err := r.CreateCategory(ctx, model.Category{Slug: "mains", Title: "Mains"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}

	item, err := r.CreateMenuItem(ctx, model.MenuItem{
		Title:      title,
		PriceCents: priceCents,
		Featured:   featured,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("seed menu item %s: %v", title, err)
	}

	return item.ID
}

func countRows(t *testing.T, r *PostgresRepository, table string) int {
	t.Helper()

	var n int
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestUpsertCartLine_ConsolidatesByItem(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	itemID := seedMenuItem(t, repo, "Pasta", 1250, true)

	line, err := repo.UpsertCartLine(ctx, userID, itemID, 2)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if line.Quantity != 2 || line.UnitPriceCents != 1250 || line.PriceCents != 2500 {
		t.Fatalf("after first add: %+v", line)
	}

	line, err = repo.UpsertCartLine(ctx, userID, itemID, 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if line.Quantity != 3 || line.PriceCents != 3750 {
		t.Fatalf("after second add: %+v", line)
	}

	if n := countRows(t, repo, "carts"); n != 1 {
		t.Fatalf("cart rows = %d, want 1", n)
	}
}

func TestUpsertCartLine_KeepsUnitPriceSnapshot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	itemID := seedMenuItem(t, repo, "Pasta", 1250, true)

	if _, err := repo.UpsertCartLine(ctx, userID, itemID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}

	if _, err := repo.SetMenuItemPrice(ctx, itemID, 1500); err != nil {
		t.Fatalf("set price: %v", err)
	}

	line, err := repo.UpsertCartLine(ctx, userID, itemID, 1)
	if err != nil {
		t.Fatalf("add after price change: %v", err)
	}
	if line.UnitPriceCents != 1250 {
		t.Fatalf("unit price = %d, want snapshot 1250", line.UnitPriceCents)
	}
	if line.PriceCents != 3750 {
		t.Fatalf("price = %d, want 3×1250 = 3750", line.PriceCents)
	}
}

func TestUpsertCartLine_UnavailableItem(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	itemID := seedMenuItem(t, repo, "Pasta", 1250, false)

	if _, err := repo.UpsertCartLine(ctx, userID, itemID, 1); !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
	if _, err := repo.UpsertCartLine(ctx, userID, 404, 1); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestCreateOrderFromCart_Atomic(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	ready := true
	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	crewID := seedUser(t, repo, "courier", model.GroupDelivery, &ready)
	pastaID := seedMenuItem(t, repo, "Pasta", 1250, true)

	pizza, err := repo.CreateMenuItem(ctx, model.MenuItem{Title: "Pizza", PriceCents: 900, Featured: true, CategoryID: 1})
	if err != nil {
		t.Fatalf("seed second item: %v", err)
	}

	if _, err := repo.UpsertCartLine(ctx, userID, pastaID, 2); err != nil {
		t.Fatalf("add pasta: %v", err)
	}
	if _, err := repo.UpsertCartLine(ctx, userID, pizza.ID, 1); err != nil {
		t.Fatalf("add pizza: %v", err)
	}

	lines, err := repo.GetCartLines(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}

	order, items, err := repo.CreateOrderFromCart(ctx, userID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.UserID != userID || order.Status {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != crewID {
		t.Fatalf("delivery crew = %v, want %d", order.DeliveryCrewID, crewID)
	}
	if order.TotalCents != 2500+900 {
		t.Fatalf("total = %d, want 3400", order.TotalCents)
	}

	if len(items) != len(lines) {
		t.Fatalf("order items = %d, want %d", len(items), len(lines))
	}
	for i, l := range lines {
		it := items[i]
		if it.MenuItemID != l.MenuItemID || it.Quantity != l.Quantity || it.PriceCents != l.PriceCents {
			t.Fatalf("item %d = %+v, want snapshot of %+v", i, it, l)
		}
		if it.OrderID != order.ID {
			t.Fatalf("item %d order = %d, want %d", i, it.OrderID, order.ID)
		}
	}

	after, err := repo.GetCartLines(ctx, userID)
	if err != nil {
		t.Fatalf("get cart after checkout: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("cart has %d lines after checkout, want 0", len(after))
	}
}

func TestCreateOrderFromCart_NoDeliveryRollsBack(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	notReady := false
	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	seedUser(t, repo, "courier", model.GroupDelivery, &notReady)
	itemID := seedMenuItem(t, repo, "Pasta", 1250, true)

	if _, err := repo.UpsertCartLine(ctx, userID, itemID, 2); err != nil {
		t.Fatalf("add item: %v", err)
	}

	_, _, err := repo.CreateOrderFromCart(ctx, userID)
	if !errors.Is(err, ErrNoDeliveryAvailable) {
		t.Fatalf("expected ErrNoDeliveryAvailable, got %v", err)
	}

	if n := countRows(t, repo, "orders"); n != 0 {
		t.Fatalf("orders = %d after failed checkout, want 0", n)
	}
	if n := countRows(t, repo, "order_items"); n != 0 {
		t.Fatalf("order_items = %d after failed checkout, want 0", n)
	}

	lines, err := repo.GetCartLines(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("cart changed after failed checkout: %+v", lines)
	}
}

func TestCreateOrderFromCart_EmptyCart(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	ready := true
	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	seedUser(t, repo, "courier", model.GroupDelivery, &ready)

	if _, _, err := repo.CreateOrderFromCart(ctx, userID); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreateOrderFromCart_DeletesOnlyOrderedLines(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	ready := true
	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	seedUser(t, repo, "courier", model.GroupDelivery, &ready)
	pastaID := seedMenuItem(t, repo, "Pasta", 1250, true)

	pizza, err := repo.CreateMenuItem(ctx, model.MenuItem{Title: "Pizza", PriceCents: 900, Featured: true, CategoryID: 1})
	if err != nil {
		t.Fatalf("seed second item: %v", err)
	}

	if _, err := repo.UpsertCartLine(ctx, userID, pastaID, 2); err != nil {
		t.Fatalf("add pasta: %v", err)
	}

	order, items, err := repo.CreateOrderFromCart(ctx, userID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(items) != 1 || items[0].MenuItemID != pastaID {
		t.Fatalf("unexpected items: %+v", items)
	}

	// Строка, появившаяся после оформления, не должна задеваться прошлым заказом.
	if _, err := repo.UpsertCartLine(ctx, userID, pizza.ID, 1); err != nil {
		t.Fatalf("add pizza after checkout: %v", err)
	}

	lines, err := repo.GetCartLines(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(lines) != 1 || lines[0].MenuItemID != pizza.ID {
		t.Fatalf("cart = %+v, want only the pizza line", lines)
	}

	if _, err := repo.GetOrder(ctx, order.ID); err != nil {
		t.Fatalf("get order: %v", err)
	}
}

func TestCreateRating_UniquePerTarget(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	ready := true
	userID := seedUser(t, repo, "alice", model.GroupCustomer, nil)
	seedUser(t, repo, "courier", model.GroupDelivery, &ready)
	itemID := seedMenuItem(t, repo, "Pasta", 1250, true)

	if _, err := repo.UpsertCartLine(ctx, userID, itemID, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, _, err := repo.CreateOrderFromCart(ctx, userID); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	purchased, err := repo.HasPurchased(ctx, userID, itemID)
	if err != nil {
		t.Fatalf("has purchased: %v", err)
	}
	if !purchased {
		t.Fatalf("purchase not detected after checkout")
	}

	target := model.RatingTarget{Kind: model.RatingTargetMenuItem, ID: itemID}
	if _, err := repo.CreateRating(ctx, model.Rating{UserID: userID, Rate: 8, Target: target}); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if _, err := repo.CreateRating(ctx, model.Rating{UserID: userID, Rate: 3, Target: target}); !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("expected ErrAlreadyRated, got %v", err)
	}

	summary, err := repo.RatingSummary(ctx, target)
	if err != nil {
		t.Fatalf("rating summary: %v", err)
	}
	if summary.Count != 1 || summary.Average != 8 {
		t.Fatalf("summary = %+v, want count 1 average 8", summary)
	}
}
