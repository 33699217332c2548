package news

import "time"

// SampleArticles returns the built-in demonstration catalog. The records
// are deterministic and act as a stand-in for a real news feed.
func SampleArticles() []Article {
	return []Article{
		{
			ID:          "1",
			Title:       "Revolutionary AI Technology Transforms Healthcare Diagnostics",
			Description: "New artificial intelligence system achieves 95% accuracy in early disease detection, potentially saving millions of lives worldwide.",
			Content:     "A groundbreaking AI system developed by researchers has demonstrated unprecedented accuracy in medical diagnostics...",
			URL:         "https://example.com/ai-healthcare",
			ImageURL:    "https://images.pexels.com/photos/3825584/pexels-photo-3825584.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "tech-news", Name: "Tech News Daily"},
			Author:      "Dr. Sarah Johnson",
			PublishedAt: time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC),
			Category:    CategoryTechnology,
			Sentiment:   SentimentPositive,
			Summary: []string{
				"AI system achieves 95% accuracy in disease detection",
				"Technology can identify conditions weeks before traditional methods",
				"Clinical trials show significant reduction in false positives",
				"Expected to be available in hospitals within 18 months",
			},
		},
		{
			ID:          "2",
			Title:       "Global Climate Summit Reaches Historic Agreement on Carbon Emissions",
			Description: "World leaders commit to ambitious new targets for reducing greenhouse gas emissions by 2030.",
			Content:     "In a landmark decision at the Global Climate Summit, 195 countries have agreed to binding targets...",
			URL:         "https://example.com/climate-summit",
			ImageURL:    "https://images.pexels.com/photos/1647976/pexels-photo-1647976.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "reuters", Name: "Reuters"},
			Author:      "Michael Chen",
			PublishedAt: time.Date(2025, 1, 8, 8, 15, 0, 0, time.UTC),
			Category:    CategoryPolitics,
			Sentiment:   SentimentPositive,
			Summary: []string{
				"195 countries agree to binding emission reduction targets",
				"New funding mechanism for developing nations established",
				"Target to reduce global emissions by 50% by 2030",
				"Historic breakthrough in international climate cooperation",
			},
		},
		{
			ID:          "3",
			Title:       "Major Breakthrough in Quantum Computing Achieved by Research Team",
			Description: "Scientists demonstrate stable quantum processor that operates at room temperature, marking a significant leap forward.",
			Content:     "A team of quantum physicists has successfully created a quantum processor that maintains coherence...",
			URL:         "https://example.com/quantum-computing",
			ImageURL:    "https://images.pexels.com/photos/159304/network-cable-ethernet-computer-159304.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "science-daily", Name: "Science Daily"},
			Author:      "Prof. Anna Martinez",
			PublishedAt: time.Date(2025, 1, 8, 6, 0, 0, 0, time.UTC),
			Category:    CategoryTechnology,
			Sentiment:   SentimentPositive,
			Summary: []string{
				"Room temperature quantum processor successfully demonstrated",
				"Breakthrough could accelerate practical quantum computing",
				"Maintains quantum coherence for unprecedented duration",
				"Opens possibilities for widespread quantum applications",
			},
		},
		{
			ID:          "4",
			Title:       "Olympic Champion Announces Retirement After Successful Career",
			Description: "Three-time gold medalist decides to step away from competitive sports to focus on coaching young athletes.",
			Content:     "After a stellar career spanning over a decade, Olympic champion...",
			URL:         "https://example.com/olympic-retirement",
			ImageURL:    "https://images.pexels.com/photos/863998/pexels-photo-863998.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "sports-news", Name: "Sports Network"},
			Author:      "James Rodriguez",
			PublishedAt: time.Date(2025, 1, 7, 20, 45, 0, 0, time.UTC),
			Category:    CategorySports,
			Sentiment:   SentimentNeutral,
			Summary: []string{
				"Three-time Olympic gold medalist announces retirement",
				"Plans to establish coaching academy for young athletes",
				"Career highlights include world records and championship titles",
				"Will remain involved in sports through mentorship programs",
			},
		},
		{
			ID:          "5",
			Title:       "New Study Reveals Benefits of Mediterranean Diet for Brain Health",
			Description: "Comprehensive research shows significant cognitive improvements in adults following Mediterranean dietary patterns.",
			Content:     "A large-scale study involving 10,000 participants over five years has demonstrated...",
			URL:         "https://example.com/mediterranean-diet",
			ImageURL:    "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "health-today", Name: "Health Today"},
			Author:      "Dr. Maria Gonzalez",
			PublishedAt: time.Date(2025, 1, 7, 14, 20, 0, 0, time.UTC),
			Category:    CategoryHealth,
			Sentiment:   SentimentPositive,
			Summary: []string{
				"Mediterranean diet linked to 40% reduced cognitive decline",
				"Study followed 10,000 participants over five years",
				"Significant improvements in memory and concentration",
				"Diet rich in omega-3s and antioxidants shows protective effects",
			},
		},
		{
			ID:          "6",
			Title:       "Stock Markets Experience Volatility Amid Economic Uncertainty",
			Description: "Global markets show mixed signals as investors react to changing economic indicators and policy announcements.",
			Content:     "Financial markets around the world are experiencing increased volatility...",
			URL:         "https://example.com/market-volatility",
			ImageURL:    "https://images.pexels.com/photos/534216/pexels-photo-534216.jpeg?auto=compress&cs=tinysrgb&w=800",
			Source:      Source{ID: "financial-times", Name: "Financial Times"},
			Author:      "Robert Kim",
			PublishedAt: time.Date(2025, 1, 7, 12, 30, 0, 0, time.UTC),
			Category:    CategoryBusiness,
			Sentiment:   SentimentNegative,
			Summary: []string{
				"Global markets show increased volatility this week",
				"Technology stocks lead decline with 3% average drop",
				"Economic uncertainty drives investor caution",
				"Analysts predict continued turbulence in coming weeks",
			},
		},
	}
}
