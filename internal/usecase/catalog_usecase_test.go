package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var validCustomer = entities.CustomerInput{Name: "Maria Silva", Email: "Maria@Example.com", Document: "123.456.789-09"}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("validation error does not reach the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.CustomerInput{Name: "Jo", Email: "x", Document: "1"})
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("normalizes and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Email != "maria@example.com" || c.Document != "12345678909" || !c.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected customer: %+v", c)
				}
				c.ID = "cus-1"
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), validCustomer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cus-1" {
			t.Fatalf("expected id cus-1, got %q", c.ID)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))
		if _, err := uc.Create(context.Background(), validCustomer); !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdateAndDelete(t *testing.T) {
	stored := entities.Customer{ID: "cus-1", Name: "Maria", Email: "maria@example.com", Document: "12345678909", CreatedAt: fixedNow.Add(-time.Hour)}

	t.Run("update keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		in := validCustomer
		in.Name = "Maria Souza"
		c, err := uc.Update(context.Background(), "cus-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cus-1" || c.Name != "Maria Souza" || !c.CreatedAt.Equal(stored.CreatedAt) {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})

	t.Run("update missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cus-404").Return(entities.Customer{}, nil)
		if _, err := uc.Update(context.Background(), "cus-404", validCustomer); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), "cus-1").Return(nil)
		if err := uc.Delete(context.Background(), "cus-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Create(t *testing.T) {
	in := entities.VehicleInput{CustomerID: "cus-1", Plate: "abc-1d23", Brand: "Fiat", Model: "Uno", Year: 2012}

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, nil)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("normalizes plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				v.ID = "veh-1"
				return v, nil
			},
		)

		v, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Plate != "ABC1D23" || v.ID != "veh-1" {
			t.Fatalf("unexpected vehicle: %+v", v)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil, nil)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "cus-1").Return([]entities.Vehicle{{ID: "veh-1"}}, nil)
		items, err := uc.ListByCustomer(context.Background(), "cus-1")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result: %v %v", items, err)
		}
	})
}

func TestServiceUseCase(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.ServiceInput{Name: "Alinhamento", PriceCents: -1})
		if !errors.Is(err, entities.ErrNegativeMoney) {
			t.Fatalf("expected ErrNegativeMoney, got %v", err)
		}
	})

	t.Run("price update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Alinhamento", Price: entities.MustMoney(10000)}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil },
		)

		s, err := uc.Update(context.Background(), "svc-1", entities.ServiceInput{Name: "Alinhamento", PriceCents: 12000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Price.Cents() != 12000 {
			t.Fatalf("expected 12000, got %d", s.Price.Cents())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-404").Return(entities.Service{}, nil)
		if _, err := uc.GetByID(context.Background(), "svc-404"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestMaterialUseCase(t *testing.T) {
	t.Run("negative quantity", func(t *testing.T) {
		uc := NewMaterialUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.MaterialInput{Name: "Filtro", Quantity: -1})
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		if _, err := uc.List(context.Background()); !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}
