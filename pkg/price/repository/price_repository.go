package repository

import "agrosync/entities"

type PriceRepository interface {
	List() ([]entities.Price, error)
	UpdateByQuality(quality string, price float64) (*entities.Price, error)
}
