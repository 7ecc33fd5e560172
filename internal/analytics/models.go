package analytics

import "github.com/richxcame/rentaride/internal/bookings"

// DashboardStats summarizes the business for the admin console landing page
type DashboardStats struct {
	TotalVehicles     int                         `json:"total_vehicles"`
	AvailableVehicles int                         `json:"available_vehicles"`
	TotalBookings     int                         `json:"total_bookings"`
	PendingBookings   int                         `json:"pending_bookings"`
	TotalRevenue      float64                     `json:"total_revenue"`
	RecentBookings    []*bookings.BookingResponse `json:"recent_bookings"`
}
