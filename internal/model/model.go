// Package model содержит доменные сущности ресторанного API.
package model

import "time"

// Group определяет роль пользователя в системе.
type Group string

const (
	GroupManager  Group = "manager"
	GroupDelivery Group = "delivery"
	GroupCustomer Group = "customer"
)

// KnownGroup сообщает, является ли имя группы одной из трёх ролей системы.
func KnownGroup(g Group) bool {
	return g == GroupManager || g == GroupDelivery || g == GroupCustomer
}

// User представляет принципала, полученного от внешнего провайдера учётных записей.
type User struct {
	ID          int64
	Username    string
	Email       string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	// ReadyToWork имеет три состояния: nil (не задано), false, true.
	// Заполняется только для курьеров.
	ReadyToWork *bool
	Groups      []Group
	CreatedAt   time.Time
}

// Roles — явный объект-значение с правами принципала,
// передаётся в сервисные вызовы вместо неявного состояния сессии.
type Roles struct {
	Manager   bool
	Delivery  bool
	Customer  bool
	Staff     bool
	Superuser bool
	Active    bool
}

// Roles собирает объект прав из членства в группах и флагов пользователя.
func (u *User) Roles() Roles {
	r := Roles{
		Staff:     u.IsStaff,
		Superuser: u.IsSuperuser,
		Active:    u.IsActive,
	}
	for _, g := range u.Groups {
		switch g {
		case GroupManager:
			r.Manager = true
		case GroupDelivery:
			r.Delivery = true
		case GroupCustomer:
			r.Customer = true
		}
	}
	return r
}

// InGroup сообщает о членстве пользователя в группе.
func (u *User) InGroup(g Group) bool {
	for _, have := range u.Groups {
		if have == g {
			return true
		}
	}
	return false
}

// Category — раздел меню. Категорию с блюдами удалить нельзя.
type Category struct {
	ID    int64
	Slug  string
	Title string
}

// MenuItem — позиция меню. Цена хранится в копейках.
// Featured означает доступность блюда для заказа.
type MenuItem struct {
	ID         int64
	Title      string
	PriceCents int64
	Featured   bool
	CategoryID int64
}

// MenuItemFilter описывает параметры выборки позиций меню.
// Категории объединяются через OR, границы цен включительные.
type MenuItemFilter struct {
	Search         string
	Categories     []string
	FromPriceCents *int64
	ToPriceCents   *int64
	Featured       *bool
}

// CartLine — строка корзины пользователя, уникальна по паре (user, menuitem).
// UnitPriceCents фиксируется по каталогу в момент первого добавления,
// PriceCents всегда равен quantity × unit_price.
type CartLine struct {
	ID             int64
	UserID         int64
	MenuItemID     int64
	Quantity       int32
	UnitPriceCents int64
	PriceCents     int64
}

// CartSummary — агрегаты корзины одного пользователя.
type CartSummary struct {
	TotalPriceCents int64
	ItemCount       int
	TotalQuantity   int32
}

// UserCart — корзина одного пользователя в менеджерской выборке всех корзин.
type UserCart struct {
	UserID        int64
	Username      string
	Lines         []CartLine
	SubtotalCents int64
}

// Order — заказ, созданный при оформлении корзины.
// После создания меняются только статус, время доставки и назначенный курьер.
type Order struct {
	ID             int64
	UserID         int64
	DeliveryCrewID *int64
	// Status: false — в ожидании, true — доставлен. Переход односторонний.
	Status        bool
	TotalCents    int64
	Date          time.Time
	DeliveredTime *time.Time
}

// OrderItem — неизменяемый снимок строки корзины на момент оформления заказа.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int32
	PriceCents int64
}

// RatingTargetKind перечисляет виды сущностей, которым можно ставить оценку.
type RatingTargetKind string

// RatingTargetMenuItem — пока единственный вид оцениваемой сущности.
const RatingTargetMenuItem RatingTargetKind = "menuitem"

// RatingTarget — типизированная ссылка на оцениваемую сущность.
type RatingTarget struct {
	Kind RatingTargetKind
	ID   int64
}

// Rating — оценка пользователя, не более одной на пару (user, target).
type Rating struct {
	ID     int64
	UserID int64
	Rate   int16
	Target RatingTarget
}

// RatingSummary — агрегат оценок одной сущности.
// Для сущности без оценок возвращается нулевое значение, а не ошибка.
type RatingSummary struct {
	Count   int64
	Average float64
}

// SalesReport — итог продаж за период [From, To] включительно.
type SalesReport struct {
	From       time.Time
	To         time.Time
	TotalCents int64
	Orders     int64
}
