package main

import (
	"time"

	auction "voice-auction/internal/auctionService"
	"voice-auction/internal/config"
	"voice-auction/internal/ledger"
	model "voice-auction/internal/models"
	"voice-auction/internal/server"
	"voice-auction/utils"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.Format)

	auctionLedger := ledger.NewMemoryLedger()

	if cfg.Seed.Enabled {
		prepopulateAuctions(auctionLedger)
	}

	auctionSvc := auction.NewAuctionService(auctionLedger)

	router := server.SetupRouter(auctionSvc)

	utils.Info("Starting voice auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulateAuctions adds the demo auctions to the in-memory ledger
func prepopulateAuctions(l *ledger.MemoryLedger) {
	now := time.Now().UTC()

	auctions := []model.Auction{
		{
			ID:          "1",
			Title:       "iPhone 14 Pro Max - 256GB",
			Description: "Brand new iPhone 14 Pro Max in Deep Purple.",
			StartingBid: 50000,
			CurrentBid:  75000,
			EndTime:     now.Add(1 * time.Hour),
			Category:    "Electronics",
			Image:       "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
			BidCount:    3,
			Rarity:      "rare",
			Views:       102,
			Likes:       24,
			IsHot:       true,
			IsTrending:  true,
			Seller:      model.Seller{Name: "Rajesh Kumar", Rating: 4.5, Verified: true},
			History: []model.BidRecord{
				{User: "System", Bid: 50000, Time: now.Add(-3 * time.Hour)},
				{User: "Priya Sharma", Bid: 62000, Time: now.Add(-2 * time.Hour)},
				{User: "Amit Patel", Bid: 75000, Time: now.Add(-30 * time.Minute)},
			},
			CreatedAt: now.Add(-3 * time.Hour),
			CreatedBy: "System",
		},
		{
			ID:          "2",
			Title:       "Vintage Rolex Submariner",
			Description: "1970s Rolex Submariner in excellent condition.",
			StartingBid: 200000,
			CurrentBid:  390000,
			EndTime:     now.Add(2 * time.Hour),
			Category:    "Luxury",
			Image:       "https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg",
			BidCount:    4,
			Rarity:      "legendary",
			Views:       220,
			Likes:       47,
			IsTrending:  true,
			Seller:      model.Seller{Name: "Vikram Singh", Rating: 5, Verified: true},
			History: []model.BidRecord{
				{User: "System", Bid: 200000, Time: now.Add(-6 * time.Hour)},
				{User: "Watch Collector", Bid: 390000, Time: now.Add(-1 * time.Hour)},
			},
			CreatedAt: now.Add(-6 * time.Hour),
			CreatedBy: "System",
		},
		{
			ID:          "3",
			Title:       "Bose Noise Cancelling Headphones 700",
			Description: "Premium wireless headphones with 11 levels of noise cancellation.",
			StartingBid: 12000,
			CurrentBid:  15500,
			EndTime:     now.Add(30 * time.Minute),
			Category:    "Audio",
			Image:       "https://images.pexels.com/photos/374870/pexels-photo-374870.jpeg",
			BidCount:    2,
			Rarity:      "common",
			Views:       66,
			Likes:       10,
			Seller:      model.Seller{Name: "Sneha Mehta", Rating: 4.2, Verified: false},
			History: []model.BidRecord{
				{User: "System", Bid: 12000, Time: now.Add(-2 * time.Hour)},
				{User: "Anonymous", Bid: 15500, Time: now.Add(-45 * time.Minute)},
			},
			CreatedAt: now.Add(-2 * time.Hour),
			CreatedBy: "System",
		},
		{
			ID:          "4",
			Title:       "Signed Sachin Tendulkar Bat",
			Description: "Autographed cricket bat by legend Sachin Tendulkar. Collector's item.",
			StartingBid: 100000,
			CurrentBid:  250000,
			EndTime:     now.Add(90 * time.Minute),
			Category:    "Sports Memorabilia",
			Image:       "https://images.pexels.com/photos/267202/pexels-photo-267202.jpeg",
			BidCount:    6,
			Rarity:      "legendary",
			Views:       400,
			Likes:       92,
			IsHot:       true,
			Seller:      model.Seller{Name: "Cricket Vault", Rating: 4.9, Verified: true},
			History: []model.BidRecord{
				{User: "System", Bid: 100000, Time: now.Add(-5 * time.Hour)},
				{User: "Cricket Fan", Bid: 250000, Time: now.Add(-20 * time.Minute)},
			},
			CreatedAt: now.Add(-5 * time.Hour),
			CreatedBy: "System",
		},
	}

	// insert oldest first so the iteration order matches the listing above
	for i := len(auctions) - 1; i >= 0; i-- {
		l.InsertAuction(auctions[i])
	}
}
