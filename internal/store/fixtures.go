package store

import "car-api-go/internal/models"

// Fixtures returns a fresh copy of the baseline cars used to reset a store
func Fixtures() []models.Car {
	return []models.Car{
		{
			ID:       "5b4e1e3a-7d2f-4c1a-9f0e-1a2b3c4d5e01",
			Image:    "https://images.example.com/cars/mustang.jpg",
			Make:     "Ford",
			Model:    "Mustang",
			Descript: "V8 coupe with a manual gearbox",
			Year:     2015,
			Color:    "red",
			IsNew:    false,
			NumDoors: 2,
			Worth:    "24000",
		},
		{
			ID:       "5b4e1e3a-7d2f-4c1a-9f0e-1a2b3c4d5e02",
			Image:    "https://images.example.com/cars/civic.jpg",
			Make:     "Honda",
			Model:    "Civic",
			Descript: "Compact sedan, one owner",
			Year:     2018,
			Color:    "silver",
			IsNew:    false,
			NumDoors: 4,
			Worth:    "16500",
		},
		{
			ID:       "5b4e1e3a-7d2f-4c1a-9f0e-1a2b3c4d5e03",
			Image:    "https://images.example.com/cars/model3.jpg",
			Make:     "Tesla",
			Model:    "Model 3",
			Descript: "Long range, dual motor",
			Year:     2023,
			Color:    "white",
			IsNew:    true,
			NumDoors: 4,
			Worth:    "47000",
		},
		{
			ID:       "5b4e1e3a-7d2f-4c1a-9f0e-1a2b3c4d5e04",
			Image:    "https://images.example.com/cars/wrangler.jpg",
			Make:     "Jeep",
			Model:    "Wrangler",
			Descript: "Soft top, lifted",
			Year:     2012,
			Color:    "green",
			IsNew:    false,
			NumDoors: 2,
			Worth:    "21000",
		},
		{
			ID:       "5b4e1e3a-7d2f-4c1a-9f0e-1a2b3c4d5e05",
			Image:    "https://images.example.com/cars/golf.jpg",
			Make:     "Volkswagen",
			Model:    "Golf",
			Descript: "Hatchback with a sunroof",
			Year:     2020,
			Color:    "blue",
			IsNew:    true,
			NumDoors: 4,
			Worth:    "22500",
		},
	}
}
