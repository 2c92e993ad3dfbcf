package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestRandomCar_FieldsWithinRanges(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		car := randomCar(r, len(dealerNames))
		if car.Manufacturer == "" || car.Model == "" {
			t.Fatalf("car %d missing manufacturer or model: %+v", i, car)
		}
		if _, ok := manufacturers[car.Manufacturer]; !ok {
			t.Errorf("unknown manufacturer %q", car.Manufacturer)
		}
		if car.DealerID < 1 || car.DealerID > len(dealerNames) {
			t.Errorf("dealer id %d out of range", car.DealerID)
		}
		if car.Price < 3000 || car.Price >= 60000 {
			t.Errorf("price %f out of range", car.Price)
		}
		if car.Year < 2008 || car.Year > 2024 {
			t.Errorf("year %d out of range", car.Year)
		}
		if car.FuelType == "Electric" && car.EngineSize != 0 {
			t.Errorf("electric car with engine size %f", car.EngineSize)
		}
	}
}

func TestRandomServices_DatesWithinWindow(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	oldest := time.Now().UTC().AddDate(-8, 0, -1)
	for i := 0; i < 100; i++ {
		for _, ev := range randomServices(r) {
			if ev.Date.Before(oldest) {
				t.Errorf("service date %v older than window", ev.Date)
			}
			if ev.Description == "" {
				t.Error("service event missing description")
			}
		}
	}
}

func TestRandomAccidents_SeverityAlwaysSet(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		for _, ev := range randomAccidents(r) {
			if ev.Severity == "" {
				t.Error("accident event missing severity")
			}
		}
	}
}
