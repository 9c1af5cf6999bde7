// Package authz реализует проверку прав доступа по ролям.
// Проверка — чистый предикат над объектом прав, без побочных эффектов.
package authz

import (
	"errors"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// ErrForbidden возвращается, когда принципалу не хватает прав на операцию.
var ErrForbidden = errors.New("forbidden")

// Action перечисляет операции API, подлежащие проверке прав.
type Action int

const (
	// ActionCatalogRead — чтение меню и категорий, доступно любому
	// аутентифицированному принципалу (допуск безопасных методов).
	ActionCatalogRead Action = iota
	// ActionCatalogManage — изменение меню и категорий, включая цену и доступность.
	ActionCatalogManage
	// ActionGroupManage — управление членством в группах.
	ActionGroupManage
	// ActionReassignDelivery — переназначение курьера на заказе.
	ActionReassignDelivery
	// ActionViewReports — отчёты о продажах.
	ActionViewReports
	// ActionViewAllCarts — просмотр корзин всех пользователей.
	ActionViewAllCarts
	// ActionCartUse — просмотр и изменение собственной корзины.
	ActionCartUse
	// ActionCheckout — оформление заказа из корзины.
	ActionCheckout
	// ActionRate — просмотр и выставление оценок.
	ActionRate
	// ActionMarkDelivered — отметка заказа доставленным.
	ActionMarkDelivered
	// ActionToggleReady — переключение собственной готовности к работе.
	ActionToggleReady
)

// IsManager выполняет трёхфакторную проверку менеджера:
// группа manager, признак staff и признак superuser — все обязательны.
func IsManager(r model.Roles) bool {
	return r.Manager && r.Staff && r.Superuser
}

// Authorize решает, разрешена ли операция принципалу с данными правами.
// Неактивный принципал не получает ничего.
func Authorize(r model.Roles, a Action) error {
	if !r.Active {
		return ErrForbidden
	}

	switch a {
	case ActionCatalogRead:
		return nil
	case ActionCatalogManage, ActionGroupManage, ActionReassignDelivery, ActionViewReports, ActionViewAllCarts:
		if IsManager(r) {
			return nil
		}
	case ActionCartUse, ActionCheckout, ActionRate:
		if r.Customer {
			return nil
		}
	case ActionMarkDelivered, ActionToggleReady:
		if r.Delivery {
			return nil
		}
	}

	return ErrForbidden
}
