package extract

import (
	"fmt"
	"strings"
)

const (
	plazaID       = "rR0K2hvyTkCLCDF129-HgQ"
	materialsID   = "mHUPfUZ9QA2TzS4tlZNJQA"
	lifeScienceID = "UdDNmWPQS-m_vkxcSWYnvw"
)

type menuItem struct {
	category, title, desc string
}

func (it menuItem) html() string {
	var b strings.Builder
	b.WriteString(`<div class="content-item">`)
	fmt.Fprintf(&b, `<span class="category">%s</span>`, it.category)
	if it.title != "" {
		fmt.Fprintf(&b, `<div class="content-item-title">%s</div>`, it.title)
	}
	fmt.Fprintf(&b, `<div class="content-item-desc"><p>%s</p></div>`, it.desc)
	b.WriteString(`</div>`)
	return b.String()
}

func daySection(day string, items ...menuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="day-container"><div class="day"><span>%s</span></div>`, day)
	if len(items) == 0 {
		b.WriteString(`<p class="empty">등록된 메뉴가 없습니다</p>`)
	}
	for _, it := range items {
		b.WriteString(it.html())
	}
	b.WriteString(`</div>`)
	return b.String()
}

func weekContainer(shopID string, days ...string) string {
	return fmt.Sprintf(`<div class="shop-week-container" id="shop-week-%s">%s</div>`, shopID, strings.Join(days, ""))
}

func weeklyPage(anchor string, containers ...string) string {
	return fmt.Sprintf(`<html><body>
<div class="first-day"><p>%s (월)</p></div>
%s
</body></html>`, anchor, strings.Join(containers, "\n"))
}

func slide(shopID string, items ...menuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="swiper-slide" id="shop-%s">`, shopID)
	for _, it := range items {
		b.WriteString(it.html())
	}
	b.WriteString(`</div>`)
	return b.String()
}

func dailyPage(dateLabel string, donation *menuItem, slides ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body>`)
	fmt.Fprintf(&b, `<section class="today-slider"><p class="today-date">%s</p>%s</section>`,
		dateLabel, strings.Join(slides, ""))
	if donation != nil {
		fmt.Fprintf(&b, `<section class="donation-container">%s</section>`, donation.html())
	}
	b.WriteString(`</body></html>`)
	return b.String()
}
