package product

import (
	"errors"
	"testing"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/collaborators"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type productServiceMocks struct {
	products *repository.MockProductStore
	auctions *repository.MockAuctionStore
	images   *collaborators.MockImageStore
	notify   *collaborators.MockNotificationSink
}

func newProductService(t *testing.T) (*ProductService, productServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := productServiceMocks{
		products: repository.NewMockProductStore(ctrl),
		auctions: repository.NewMockAuctionStore(ctrl),
		images:   collaborators.NewMockImageStore(ctrl),
		notify:   collaborators.NewMockNotificationSink(ctrl),
	}
	clock := &utils.FixedClock{Time: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)}
	return NewProductService(m.products, m.auctions, m.images, m.notify, clock), m
}

func storedProduct() model.Product {
	return model.Product{
		ID:          "p1",
		SellerID:    "seller1",
		Name:        "vintage camera",
		Description: "works fine",
		Category:    model.CategoryElectronics,
		MinPrice:    10000,
		ImageURLs:   []string{"https://cdn.local/images/1-front.jpg"},
	}
}

func validUpdate() UpdateProductRequest {
	return UpdateProductRequest{
		Name:        "vintage camera, boxed",
		Description: "with original box",
		Category:    model.CategoryElectronics,
		MinPrice:    12000,
	}
}

// Tests UpdateProduct
func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("updates_fields_while_unauctioned", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
		m.products.EXPECT().UpdateProduct(gomock.Any()).DoAndReturn(func(p model.Product) error {
			require.Equal(t, "vintage camera, boxed", p.Name)
			require.Equal(t, int64(12000), p.MinPrice)
			return nil
		})

		updated, err := service.UpdateProduct("seller1", "p1", validUpdate())
		require.NoError(t, err)
		require.Equal(t, "vintage camera, boxed", updated.Name)
	})

	t.Run("replacing_images_deletes_old_urls", func(t *testing.T) {
		service, m := newProductService(t)

		req := validUpdate()
		req.Images = []model.ImageFile{{Name: "back.jpg", Data: []byte{0xFF, 0xD8}}}
		newURLs := []string{"https://cdn.local/images/2-back.jpg"}

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
		m.images.EXPECT().Upload(req.Images).Return(newURLs, nil)
		m.products.EXPECT().UpdateProduct(gomock.Any()).Return(nil)
		m.images.EXPECT().Delete([]string{"https://cdn.local/images/1-front.jpg"}).Return(nil)

		updated, err := service.UpdateProduct("seller1", "p1", req)
		require.NoError(t, err)
		require.Equal(t, newURLs, updated.ImageURLs)
	})

	t.Run("rejected_once_auctioned", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{ID: "a1", ProductID: "p1"}, nil)

		_, err := service.UpdateProduct("seller1", "p1", validUpdate())
		require.ErrorIs(t, err, auctionerrors.ErrProductAlreadyAuctioned)
	})

	t.Run("rejected_for_non_owner", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)

		_, err := service.UpdateProduct("intruder", "p1", validUpdate())
		require.ErrorIs(t, err, auctionerrors.ErrForbidden)
	})

	t.Run("invalid_min_price", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		req := validUpdate()
		req.MinPrice = 12500
		_, err := service.UpdateProduct("seller1", "p1", req)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidRequest)
	})
}

// Tests DeleteProduct
func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("deletes_and_notifies_likers", func(t *testing.T) {
		service, m := newProductService(t)

		likers := []string{"bidder1", "bidder2"}
		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
		m.products.EXPECT().GetLikers("p1").Return(likers, nil)
		m.products.EXPECT().DeleteProduct("p1").Return(nil)
		m.images.EXPECT().Delete([]string{"https://cdn.local/images/1-front.jpg"}).Return(nil)
		m.notify.EXPECT().RegistrationCanceled(gomock.Any(), likers).Return(nil)

		require.NoError(t, service.DeleteProduct("seller1", "p1"))
	})

	t.Run("notification_failure_does_not_surface", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
		m.products.EXPECT().GetLikers("p1").Return(nil, nil)
		m.products.EXPECT().DeleteProduct("p1").Return(nil)
		m.images.EXPECT().Delete(gomock.Any()).Return(errors.New("cdn down"))
		m.notify.EXPECT().RegistrationCanceled(gomock.Any(), gomock.Any()).Return(errors.New("mail down"))

		require.NoError(t, service.DeleteProduct("seller1", "p1"),
			"deletion already committed, collaborator failures are logged only")
	})

	t.Run("rejected_once_auctioned", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("p1").Return(storedProduct(), nil)
		m.auctions.EXPECT().GetAuctionByProduct("p1").Return(model.Auction{ID: "a1"}, nil)

		err := service.DeleteProduct("seller1", "p1")
		require.ErrorIs(t, err, auctionerrors.ErrProductAlreadyAuctioned)
	})

	t.Run("unknown_product", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().GetProduct("missing").Return(model.Product{}, auctionerrors.ErrProductNotFound)

		err := service.DeleteProduct("seller1", "missing")
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})
}

// Tests the read and like surface.
func TestProductService_ReadsAndLikes(t *testing.T) {
	t.Run("list_rejects_unknown_category", func(t *testing.T) {
		service, _ := newProductService(t)

		_, err := service.ListProducts("GADGETS")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidRequest)
	})

	t.Run("list_filters_by_category", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().ListProducts(model.CategoryBooks).Return([]model.Product{{ID: "p2"}}, nil)

		products, err := service.ListProducts(model.CategoryBooks)
		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("toggle_like_returns_new_state", func(t *testing.T) {
		service, m := newProductService(t)

		m.products.EXPECT().ToggleLike("p1", "bidder1").Return(true, int64(1), nil)

		liked, count, err := service.ToggleLike("bidder1", "p1")
		require.NoError(t, err)
		require.True(t, liked)
		require.Equal(t, int64(1), count)
	})

	t.Run("toggle_like_requires_ids", func(t *testing.T) {
		service, _ := newProductService(t)

		_, _, err := service.ToggleLike("", "p1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidRequest)
	})
}
