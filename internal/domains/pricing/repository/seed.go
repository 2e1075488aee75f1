package repository

import (
	"github.com/google/uuid"

	"sahayak/internal/domains/pricing/model"
	"sahayak/shared/constant"
)

// seedRows returns the shipped catalogue, all rates in INR. Monthly rows for
// the nanny and maid categories deliberately carry only week or visit rates
// where the backend does, so the monthly estimate path stays exercised.
func seedRows() []model.PriceRow {
	rows := []model.PriceRow{
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: "<=3", BookingType: model.BookingTypeOnDemand, DayPrice: 500, VisitPrice: 300},
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: "4-6", BookingType: model.BookingTypeOnDemand, DayPrice: 700},
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: ">=7", BookingType: model.BookingTypeOnDemand, DayPrice: 900},
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: "<=3", BookingType: model.BookingTypeMonthly, MonthPrice: 2500},
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: "4-6", BookingType: model.BookingTypeMonthly, MonthPrice: 3500},
		{Category: constant.ServiceCook, SubCategory: model.SubCategoryPeople, Band: ">=7", BookingType: model.BookingTypeMonthly, WeekPrice: 1100},

		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "1BHK", BookingType: model.BookingTypeOnDemand, DayPrice: 300},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "2BHK", BookingType: model.BookingTypeOnDemand, DayPrice: 400},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "3BHK", BookingType: model.BookingTypeOnDemand, DayPrice: 500},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "4BHK", BookingType: model.BookingTypeOnDemand, DayPrice: 600},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "2BHK", BookingType: model.BookingTypeRegular, MonthPrice: 1800},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryHouseSize, Band: "3BHK", BookingType: model.BookingTypeRegular, MonthPrice: 2400},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryBathrooms, Band: "<=2", BookingType: model.BookingTypeOnDemand, DayPrice: 200},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryBathrooms, Band: ">=3", BookingType: model.BookingTypeOnDemand, DayPrice: 350},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryPeople, Band: "<=3", BookingType: model.BookingTypeRegular, MonthPrice: 1500},
		{Category: constant.ServiceMaid, SubCategory: model.SubCategoryPeople, Band: ">=4", BookingType: model.BookingTypeRegular, MonthPrice: 2200},

		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: "<=3", BookingType: model.BookingTypeOnDemand, DayPrice: 1200},
		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: "4-6", BookingType: model.BookingTypeOnDemand, DayPrice: 1500},
		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: ">=7", BookingType: model.BookingTypeOnDemand, DayPrice: 1800},
		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: "<=3", BookingType: model.BookingTypeRegular, VisitPrice: 500},
		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: "4-6", BookingType: model.BookingTypeRegular, MonthPrice: 12000},
		{Category: constant.ServiceNanny, SubCategory: model.SubCategoryNumber, Band: ">=7", BookingType: model.BookingTypeRegular, DayPrice: 700},
	}

	for i := range rows {
		rows[i].ID = uuid.NewString()
	}

	return rows
}
