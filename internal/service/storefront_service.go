package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/cache"
	"github.com/Cheertaboi/minimal-shop/internal/cart"
	"github.com/Cheertaboi/minimal-shop/internal/contact"
	"github.com/Cheertaboi/minimal-shop/internal/models"
	"github.com/Cheertaboi/minimal-shop/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownSection  = errors.New("unknown section")
)

// Sections are the anchors of the composed page, in navigation order.
var Sections = []string{"home", "catalog", "about", "reviews", "contacts"}

// SessionView is what the page needs to render one visitor's state.
type SessionView struct {
	Cart          cart.Summary
	ActiveSection string
	Notices       []models.Notice
	ContactDraft  contact.Form
}

type StorefrontService struct {
	catalog  repository.Catalog
	messages repository.MessageStore
	sessions *cache.SessionCache
	logger   *zap.Logger
}

func NewStorefrontService(catalog repository.Catalog, messages repository.MessageStore, sessions *cache.SessionCache, logger *zap.Logger) *StorefrontService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StorefrontService{
		catalog:  catalog,
		messages: messages,
		sessions: sessions,
		logger:   logger,
	}
}

// Products lists the catalog, optionally narrowed to one category.
func (s *StorefrontService) Products(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return repository.FilterByCategory(products, category), nil
}

func (s *StorefrontService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return repository.Categories(products), nil
}

func (s *StorefrontService) Reviews() []models.Review {
	return []models.Review{
		{Name: "Анна К.", Text: "Отличное качество товаров! Доставка быстрая, упаковка аккуратная.", Rating: 5},
		{Name: "Михаил П.", Text: "Минималистичный дизайн — это то, что я искал. Рекомендую!", Rating: 5},
		{Name: "Елена С.", Text: "Очень довольна покупкой. Всё соответствует описанию.", Rating: 5},
	}
}

// AddToCart looks the product up in the catalog and adds one unit of it to
// the session's cart, queueing a confirmation notice.
func (s *StorefrontService) AddToCart(ctx context.Context, sessionID string, productID int) (cart.Summary, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return cart.Summary{}, fmt.Errorf("get product %d: %w", productID, err)
	}
	if p == nil {
		return cart.Summary{}, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}

	var summary cart.Summary
	s.sessions.With(sessionID, func(sess *cache.Session) {
		sess.Cart.AddItem(*p)
		sess.Notices = append(sess.Notices, newNotice(
			"Товар добавлен",
			fmt.Sprintf("%s добавлен в корзину", p.Name),
			models.NoticeDefault,
		))
		summary = sess.Cart.Snapshot()
	})

	s.logger.Info("item added",
		zap.String("session_id", sessionID),
		zap.Int("product_id", productID),
		zap.Int("item_count", summary.ItemCount),
	)
	return summary, nil
}

func (s *StorefrontService) RemoveFromCart(sessionID string, productID int) cart.Summary {
	var summary cart.Summary
	s.sessions.With(sessionID, func(sess *cache.Session) {
		sess.Cart.RemoveItem(productID)
		summary = sess.Cart.Snapshot()
	})
	s.logger.Debug("item removed", zap.String("session_id", sessionID), zap.Int("product_id", productID))
	return summary
}

func (s *StorefrontService) ChangeQuantity(sessionID string, productID, delta int) cart.Summary {
	var summary cart.Summary
	s.sessions.With(sessionID, func(sess *cache.Session) {
		sess.Cart.ChangeQuantity(productID, delta)
		summary = sess.Cart.Snapshot()
	})
	s.logger.Debug("quantity changed",
		zap.String("session_id", sessionID),
		zap.Int("product_id", productID),
		zap.Int("delta", delta),
	)
	return summary
}

// SetDelivery updates the delivery method and/or address in one step. Nil
// arguments leave the current value alone.
func (s *StorefrontService) SetDelivery(sessionID string, method *cart.DeliveryMethod, address *string) cart.Summary {
	var summary cart.Summary
	s.sessions.With(sessionID, func(sess *cache.Session) {
		if method != nil {
			sess.Cart.SetDeliveryMethod(*method)
		}
		if address != nil {
			sess.Cart.SetDeliveryAddress(*address)
		}
		summary = sess.Cart.Snapshot()
	})
	return summary
}

func (s *StorefrontService) Cart(sessionID string) cart.Summary {
	var summary cart.Summary
	s.sessions.With(sessionID, func(sess *cache.Session) {
		summary = sess.Cart.Snapshot()
	})
	return summary
}

// Navigate records which page section is highlighted in the header.
func (s *StorefrontService) Navigate(sessionID, section string) error {
	known := false
	for _, name := range Sections {
		if name == section {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	s.sessions.With(sessionID, func(sess *cache.Session) {
		sess.ActiveSection = section
	})
	return nil
}

// SubmitContact validates the contact form. A rejected form is kept as the
// session's draft so the visitor can correct it; an accepted one is stored
// and the draft is cleared. Either way a notice is queued.
func (s *StorefrontService) SubmitContact(ctx context.Context, sessionID string, form contact.Form) error {
	if err := contact.Validate(form); err != nil {
		desc := "Пожалуйста, заполните все поля"
		if errors.Is(err, contact.ErrMissingAt) {
			desc = "Пожалуйста, введите корректный email"
		}
		s.sessions.With(sessionID, func(sess *cache.Session) {
			sess.ContactDraft = form
			sess.Notices = append(sess.Notices, newNotice("Ошибка", desc, models.NoticeDestructive))
		})
		return err
	}

	id, err := s.messages.SaveMessage(ctx, models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		s.sessions.With(sessionID, func(sess *cache.Session) {
			sess.ContactDraft = form
		})
		return fmt.Errorf("save contact message: %w", err)
	}

	s.sessions.With(sessionID, func(sess *cache.Session) {
		sess.ContactDraft = contact.Form{}
		sess.Notices = append(sess.Notices, newNotice(
			"Спасибо за сообщение!",
			"Мы свяжемся с вами в ближайшее время.",
			models.NoticeDefault,
		))
	})
	s.logger.Info("contact message received", zap.String("session_id", sessionID), zap.Int64("message_id", id))
	return nil
}

// View returns the session's render state and drains its queued notices.
func (s *StorefrontService) View(sessionID string) SessionView {
	var v SessionView
	s.sessions.With(sessionID, func(sess *cache.Session) {
		v = SessionView{
			Cart:          sess.Cart.Snapshot(),
			ActiveSection: sess.ActiveSection,
			Notices:       sess.Notices,
			ContactDraft:  sess.ContactDraft,
		}
		sess.Notices = nil
	})
	return v
}

func newNotice(title, desc string, variant models.NoticeVariant) models.Notice {
	return models.Notice{
		ID:          uuid.NewString(),
		Title:       title,
		Description: desc,
		Variant:     variant,
	}
}
