package main

import (
	"fmt"
	"log"

	"github.com/meenmo/ratetree/bond"
	"github.com/meenmo/ratetree/shortrate"
)

func main() {
	in := bond.ZeroCouponInput{
		Model: shortrate.Model{
			Initial:  0.06,
			UpMove:   1.25,
			DownMove: 0.9,
		},
		Horizon: 4,
	}

	res, err := bond.PriceZeroCoupon(in)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Bond price: %.5f\n", res.Price)
	fmt.Printf("Spot rate:  %.5f\n", res.SpotRate)
}
