// Package resources serves the static financial-education article
// catalog. The content is fixed at compile time.
package resources

// Article is the metadata for one financial-education article.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ReadTime    int    `json:"readTime"`
	ImageURL    string `json:"imageUrl"`
	URL         string `json:"url"`
}

var articles = []Article{
	{
		ID:          "1",
		Title:       "Budgeting 101: How to Create Your First Budget",
		Description: "Learn the fundamentals of creating a personal budget that works for your lifestyle and financial goals.",
		Category:    "budgeting",
		ReadTime:    5,
		ImageURL:    "https://images.pexels.com/photos/6693661/pexels-photo-6693661.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
	{
		ID:          "2",
		Title:       "Emergency Fund: Why You Need One and How to Build It",
		Description: "Discover the importance of having an emergency fund and practical steps to start building your financial safety net.",
		Category:    "saving",
		ReadTime:    7,
		ImageURL:    "https://images.pexels.com/photos/3943716/pexels-photo-3943716.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
	{
		ID:          "3",
		Title:       "Debt Repayment Strategies That Actually Work",
		Description: "Explore proven methods for paying down debt efficiently and taking control of your financial future.",
		Category:    "debt",
		ReadTime:    8,
		ImageURL:    "https://images.pexels.com/photos/4386158/pexels-photo-4386158.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
	{
		ID:          "4",
		Title:       "Investing for Beginners: Getting Started with Small Amounts",
		Description: "Learn how to start investing with limited funds and build wealth over time through smart investment strategies.",
		Category:    "investing",
		ReadTime:    10,
		ImageURL:    "https://images.pexels.com/photos/6801648/pexels-photo-6801648.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
	{
		ID:          "5",
		Title:       "5 Ways to Cut Your Monthly Expenses",
		Description: "Practical tips for reducing your monthly spending without sacrificing your quality of life.",
		Category:    "budgeting",
		ReadTime:    4,
		ImageURL:    "https://images.pexels.com/photos/3943715/pexels-photo-3943715.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
	{
		ID:          "6",
		Title:       "Understanding Credit Scores and How to Improve Yours",
		Description: "Everything you need to know about credit scores, credit reports, and practical steps to boost your creditworthiness.",
		Category:    "credit",
		ReadTime:    9,
		ImageURL:    "https://images.pexels.com/photos/6802048/pexels-photo-6802048.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		URL:         "#",
	},
}

// List returns the article catalog in display order.
func List() []Article {
	out := make([]Article, len(articles))
	copy(out, articles)
	return out
}
