package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/delivery/repository"
	svc "agrosync/pkg/delivery/service"
	farmerRepo "agrosync/pkg/farmer/repository"
	"agrosync/pkg/idgen"
	landRepo "agrosync/pkg/land/repository"
	paymentSvc "agrosync/pkg/payment/service"
	productRepo "agrosync/pkg/product/repository"
	warehouseRepo "agrosync/pkg/warehouse/repository"
	"agrosync/pkg/weightconv"
)

type service struct {
	deliveries repository.Repo
	farmers    farmerRepo.FarmerRepository
	lands      landRepo.LandRepository
	products   productRepo.ProductRepository
	warehouses warehouseRepo.WarehouseRepository
	payments   paymentSvc.Reconciler
}

func New(
	deliveries repository.Repo,
	farmers farmerRepo.FarmerRepository,
	lands landRepo.LandRepository,
	products productRepo.ProductRepository,
	warehouses warehouseRepo.WarehouseRepository,
	payments paymentSvc.Reconciler,
) svc.Service {
	return &service{
		deliveries: deliveries,
		farmers:    farmers,
		lands:      lands,
		products:   products,
		warehouses: warehouses,
		payments:   payments,
	}
}

func (s *service) Intake(uid string, in svc.IntakeInput) (*entities.Delivery, error) {
	f, err := s.farmers.FindByID(in.FarmerID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.ErrFarmerNotFound
		}
		return nil, err
	}
	land, err := s.lands.FindByID(in.LandID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.ErrLandNotFound
		}
		return nil, err
	}
	if land.FarmerID != f.ID {
		return nil, svc.ErrLandNotOwned
	}

	state := in.ProductState
	if state == "" {
		state = entities.StateDry
	}
	conv, err := weightconv.Convert(in.Weight, state, weightconv.DefaultFactor)
	if err != nil {
		return nil, err
	}

	productID := in.ProductID
	if productID != nil {
		if _, err := s.products.FindByID(*productID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svc.ErrProductNotFound
			}
			return nil, err
		}
	} else if p, err := s.products.FirstActive(); err == nil {
		productID = &p.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	warehouseID := in.WarehouseID
	if warehouseID != nil {
		if _, err := s.warehouses.FindByID(*warehouseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svc.ErrWarehouseNotFound
			}
			return nil, err
		}
	} else if w, err := s.warehouses.FirstForUser(uid); err == nil {
		warehouseID = &w.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := idgen.NewDeliveryID(s.deliveries.IDExists)
	if err != nil {
		return nil, err
	}

	landID := land.ID
	d := &entities.Delivery{
		ID:               id,
		FarmerID:         f.ID,
		LandID:           &landID,
		ProductID:        productID,
		WarehouseID:      warehouseID,
		ProductState:     state,
		Weight:           conv.Dry,
		WeightFresh:      conv.Fresh,
		ConversionFactor: conv.Factor,
		PricePerKg:       in.PricePerKg,
		Status:           entities.DeliveryPending,
		Date:             in.Date,
		Notes:            in.Notes,
	}
	if err := s.deliveries.CreateWithFarmerCount(d); err != nil {
		return nil, err
	}
	return s.Get(uid, d.ID)
}

func (s *service) Revise(uid, id string, p svc.RevisionPatch) (*entities.Delivery, error) {
	cur, err := s.deliveries.FindByID(id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.ErrDeliveryNotFound
		}
		return nil, err
	}

	if p.Weight != nil || p.ProductState != nil {
		// Missing half of the pair falls back to the stored value: changing
		// only the state reinterprets the existing weight under that state.
		w := cur.Weight
		if p.Weight != nil {
			w = *p.Weight
		}
		state := cur.ProductState
		if p.ProductState != nil {
			state = *p.ProductState
		}
		conv, err := weightconv.Convert(w, state, weightconv.DefaultFactor)
		if err != nil {
			return nil, err
		}
		cur.Weight = conv.Dry
		cur.WeightFresh = conv.Fresh
		cur.ConversionFactor = conv.Factor
		cur.ProductState = state
	}

	if p.FarmerID != nil {
		if _, err := s.farmers.FindByID(*p.FarmerID, uid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svc.ErrFarmerNotFound
			}
			return nil, err
		}
		cur.FarmerID = *p.FarmerID
	}
	if p.LandID != nil {
		land, err := s.lands.FindByID(*p.LandID, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svc.ErrLandNotFound
			}
			return nil, err
		}
		if land.FarmerID != cur.FarmerID {
			return nil, svc.ErrLandNotOwned
		}
		cur.LandID = p.LandID
	}
	if p.WarehouseID != nil {
		if _, err := s.warehouses.FindByID(*p.WarehouseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svc.ErrWarehouseNotFound
			}
			return nil, err
		}
		cur.WarehouseID = p.WarehouseID
	}

	if p.PricePerKg != nil {
		cur.PricePerKg = p.PricePerKg
	}
	if p.TotalPayment != nil {
		cur.TotalPayment = p.TotalPayment
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.Date != nil {
		cur.Date = *p.Date
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.LocationDetail != nil {
		cur.LocationDetail = *p.LocationDetail
	}

	// drop preloaded associations so Save touches only the delivery row
	cur.Farmer, cur.Land, cur.Product, cur.Warehouse = nil, nil, nil, nil
	if err := s.deliveries.Update(cur); err != nil {
		return nil, err
	}

	if cur.TotalPayment != nil && *cur.TotalPayment > 0 {
		if _, err := s.payments.Reconcile(cur); err != nil {
			return nil, err
		}
	}
	return s.Get(uid, id)
}

func (s *service) Get(uid, id string) (*entities.Delivery, error) {
	d, err := s.deliveries.FindByID(id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.ErrDeliveryNotFound
		}
		return nil, err
	}
	decorate(d)
	return d, nil
}

func (s *service) List(uid string) ([]entities.Delivery, error) {
	list, err := s.deliveries.List(uid)
	if err != nil {
		return nil, err
	}
	for i := range list {
		decorate(&list[i])
	}
	return list, nil
}

func (s *service) Delete(uid, id string) error {
	if _, err := s.deliveries.FindByID(id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return svc.ErrDeliveryNotFound
		}
		return err
	}
	return s.deliveries.Delete(id)
}

// decorate fills the flattened display fields from preloaded associations.
func decorate(d *entities.Delivery) {
	if d.Farmer != nil {
		d.FarmerName = d.Farmer.Name
	}
	if d.Land != nil {
		d.LandName = d.Land.Name
	}
	if d.Warehouse != nil {
		d.WarehouseName = d.Warehouse.Name
	}
	if d.Product != nil {
		d.ProductLabel = d.Product.Name
		if d.Product.Variety != "" {
			d.ProductLabel += " " + d.Product.Variety
		}
	}
}
