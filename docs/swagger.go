package docs

// @title COP social media dashboards API
// @version 1.0
// @description Filtered aggregates of the tweets, shared links and term frequencies collected around the UN climate change conferences.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8501
// @BasePath /
// @schemes http https
