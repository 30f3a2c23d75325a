// Package changelog maintains the development log pair: a cumulative
// Development.md and a per-day TodayDevelopment.md. Each recorded commit
// message becomes a numbered entry in the today log; when the day rolls
// over, the finished day's log is archived verbatim into the cumulative
// log and a fresh today log begins.
package changelog
