package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Result struct {
	SimulationID int64   `parquet:"simulation_id"`
	CircuitID    int64   `parquet:"circuit_id"`
	Window       string  `parquet:"window"`
	Trial        int64   `parquet:"trial"`
	Value        float64 `parquet:"value"`
}

func main() {
	var results []Result
	value := 0.0
	for sim := int64(0); sim < 2; sim++ {
		for _, window := range []string{"w0", "w1"} {
			for trial := int64(0); trial < 2; trial++ {
				results = append(results, Result{
					SimulationID: sim,
					CircuitID:    0,
					Window:       window,
					Trial:        trial,
					Value:        value,
				})
				value += 0.5
			}
		}
	}

	file, err := os.Create("results.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Result](file)
	defer writer.Close()

	if _, err := writer.Write(results); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated results.parquet with %d rows", len(results))
}
