package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecowatch/econews/app/cache"
	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/reports"
	"github.com/ecowatch/econews/app/trends"
)

func NewHandler(snapshots SnapshotReader, reportReader ReportReader,
	remover RecordRemover, pinger StorePinger, scheduler RefreshTrigger,
	rules *news.Rules) *Handler {
	return &Handler{
		snapshots: snapshots,
		reports:   reportReader,
		remover:   remover,
		pinger:    pinger,
		scheduler: scheduler,
		rules:     rules,
	}
}

func (h *Handler) GetHomepage(c *gin.Context) {
	snapshot := h.snapshots.Homepage(c.Request.Context())
	if snapshot == nil {
		// Cold cache: serve an empty but fully-shaped page
		snapshot = h.emptyHomepage()
	}

	c.JSON(http.StatusOK, gin.H{
		"categorized_news": snapshot.CategorizedNews,
		"sorted_sources":   snapshot.SortedSources,
	})
}

func (h *Handler) GetTrends(c *gin.Context) {
	window, err := cache.ParseWindow(c.DefaultQuery("period", string(cache.WindowWeekly)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period, expected 'weekly' or 'monthly'"})
		return
	}

	snapshot := h.snapshots.Trends(c.Request.Context(), window)
	if snapshot == nil {
		snapshot = h.emptyTrends()
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) GetReport(c *gin.Context) {
	period, err := reports.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period, expected 'daily', 'weekly' or 'monthly'"})
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	report, err := h.reports.Load(c.Request.Context(), period, date)
	if err != nil {
		slog.Error("Report load failed", "period", period, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report for the requested date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":       string(period),
		"date":         date.Format("2006-01-02"),
		"content_type": report.ContentType,
		"body":         report.Body,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	status := http.StatusOK
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		health["store"] = "unreachable"
		status = http.StatusServiceUnavailable
	} else {
		health["store"] = "ok"
	}

	health["cache_populated"] = h.snapshots.Homepage(c.Request.Context()) != nil

	c.JSON(status, health)
}

func (h *Handler) APIDeleteRecord(c *gin.Context) {
	key := c.Param("key")
	if !news.IsRecordKey(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record key"})
		return
	}

	removed, err := h.remover.Delete(c.Request.Context(), key)
	if err != nil {
		slog.Error("Record removal failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove record"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	slog.Info("Record removed", "key", key)
	h.scheduler.TriggerRefresh()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"key":     key,
	})
}

func (h *Handler) emptyHomepage() *cache.HomepageSnapshot {
	categorized := make(map[string][]news.Record, len(h.rules.Categories))
	for _, category := range h.rules.Categories {
		categorized[category.ID] = []news.Record{}
	}
	return &cache.HomepageSnapshot{
		CategorizedNews: categorized,
		SortedSources:   []string{},
	}
}

func (h *Handler) emptyTrends() *trends.Snapshot {
	categories := make([]trends.CategoryCount, 0, len(h.rules.Categories))
	for _, category := range h.rules.Categories {
		categories = append(categories, trends.CategoryCount{Category: category.Name})
	}
	return &trends.Snapshot{
		TopKeywords:          []trends.KeywordCount{},
		SourceDistribution:   []trends.SourceCount{},
		CategoryDistribution: categories,
		CountryDistribution:  []trends.CountryCount{},
		SampleNews:           []news.Record{},
	}
}
